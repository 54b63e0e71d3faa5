package opdict

// Entry is a dictionary row: spacing in eighteenths of an em (the unit the
// MathML operator dictionary itself is specified in) plus default flags.
type Entry struct {
	LSpace, RSpace int
	Flags          Flags
}

// DefaultEntry is returned for any (character, form) pair absent from the
// table: zero spacing, no flags.
var DefaultEntry = Entry{}

type key struct {
	char rune
	form Form
}

// table is a representative subset of the W3C MathML operator dictionary,
// covering the operators exercised by common rendering: arithmetic,
// relations, fences, large operators, and punctuation. Spacing values are
// in eighteenths of an em per the dictionary's own unit convention.
var table = map[key]Entry{
	{'+', Infix}:  {5, 5, 0},
	{'+', Prefix}: {0, 0, 0},
	{'-', Infix}:  {5, 5, 0},
	{'-', Prefix}: {0, 0, 0},
	{0x2212, Infix}:  {5, 5, 0}, // MINUS SIGN
	{0x2212, Prefix}: {0, 0, 0},
	{'*', Infix}:     {4, 4, 0},
	{0x00D7, Infix}:  {4, 4, 0}, // MULTIPLICATION SIGN
	{0x22C5, Infix}:  {4, 4, 0}, // DOT OPERATOR
	{'/', Infix}:     {4, 4, 0},
	{0x00F7, Infix}:  {4, 4, 0}, // DIVISION SIGN
	{'=', Infix}:     {5, 5, 0},
	{0x2260, Infix}:  {5, 5, 0}, // NOT EQUAL TO
	{'<', Infix}:     {5, 5, 0},
	{'>', Infix}:      {5, 5, 0},
	{0x2264, Infix}:   {5, 5, 0}, // LESS-THAN OR EQUAL TO
	{0x2265, Infix}:   {5, 5, 0}, // GREATER-THAN OR EQUAL TO
	{0x2248, Infix}:   {5, 5, 0}, // ALMOST EQUAL TO
	{0x2261, Infix}:   {5, 5, 0}, // IDENTICAL TO
	{0x00B1, Infix}:   {4, 4, 0}, // PLUS-MINUS SIGN
	{0x00B1, Prefix}:  {0, 0, 0},
	{0x2208, Infix}:   {5, 5, 0}, // ELEMENT OF
	{0x2209, Infix}:   {5, 5, 0}, // NOT AN ELEMENT OF
	{0x2282, Infix}:   {5, 5, 0}, // SUBSET OF
	{0x2286, Infix}:   {5, 5, 0}, // SUBSET OF OR EQUAL TO
	{0x222A, Infix}:   {4, 4, 0}, // UNION
	{0x2229, Infix}:   {4, 4, 0}, // INTERSECTION
	{0x2192, Infix}:   {5, 5, 0}, // RIGHTWARDS ARROW
	{0x21D2, Infix}:   {5, 5, 0}, // RIGHTWARDS DOUBLE ARROW
	{0x2194, Infix}:   {5, 5, 0}, // LEFT RIGHT ARROW
	{0x2200, Prefix}:  {0, 1, 0}, // FOR ALL
	{0x2203, Prefix}:  {0, 1, 0}, // THERE EXISTS
	{0x00AC, Prefix}:  {0, 1, 0}, // NOT SIGN
	{0x2227, Infix}:   {4, 4, 0}, // LOGICAL AND
	{0x2228, Infix}:   {4, 4, 0}, // LOGICAL OR

	{'(', Prefix}:  {0, 0, Fence},
	{')', Postfix}: {0, 0, Fence},
	{'[', Prefix}:  {0, 0, Fence},
	{']', Postfix}: {0, 0, Fence},
	{'{', Prefix}:  {0, 0, Fence},
	{'}', Postfix}: {0, 0, Fence},
	{0x2308, Prefix}:  {0, 0, Fence}, // LEFT CEILING
	{0x2309, Postfix}: {0, 0, Fence}, // RIGHT CEILING
	{0x230A, Prefix}:  {0, 0, Fence}, // LEFT FLOOR
	{0x230B, Postfix}: {0, 0, Fence}, // RIGHT FLOOR
	{0x27E8, Prefix}:  {0, 0, Fence}, // LEFT ANGLE BRACKET
	{0x27E9, Postfix}: {0, 0, Fence}, // RIGHT ANGLE BRACKET
	{'|', Prefix}:     {0, 0, Fence | Stretchy | Symmetric},
	{'|', Postfix}:    {0, 0, Fence | Stretchy | Symmetric},
	{0x2016, Prefix}:  {0, 0, Fence | Stretchy | Symmetric}, // DOUBLE VERTICAL LINE
	{0x2016, Postfix}: {0, 0, Fence | Stretchy | Symmetric},

	{',', Postfix}: {0, 3, Separator},
	{';', Postfix}: {0, 3, Separator},
	{':', Infix}:   {1, 1, 0},
	{'.', Postfix}: {0, 0, 0},
	{'!', Postfix}: {0, 0, 0},
	{'\'', Postfix}: {0, 0, 0},
	{0x2032, Postfix}: {0, 0, 0}, // PRIME

	{'^', Infix}: {0, 0, Stretchy | Symmetric},
	{'_', Infix}: {0, 0, Stretchy | Symmetric},

	{0x2211, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY SUMMATION
	{0x220F, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY PRODUCT
	{0x2210, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY COPRODUCT
	{0x222B, Prefix}: {0, 1, LargeOp},                 // INTEGRAL
	{0x222C, Prefix}: {0, 1, LargeOp},                 // DOUBLE INTEGRAL
	{0x222E, Prefix}: {0, 1, LargeOp},                 // CONTOUR INTEGRAL
	{0x22C3, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY UNION
	{0x22C2, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY INTERSECTION
	{0x2A01, Prefix}: {1, 2, LargeOp | MovableLimits}, // N-ARY CIRCLED PLUS

	{0x00AF, Postfix}: {0, 0, Accent | Stretchy},             // MACRON (overline accent)
	{0x005E, Postfix}: {0, 0, Accent | Stretchy},             // CIRCUMFLEX ACCENT
	{0x007E, Postfix}: {0, 0, Accent | Stretchy},             // TILDE (combining approximation)
	{0x2192, Postfix}: {0, 0, Accent | Stretchy},             // vector arrow accent use
	{0x23DE, Postfix}: {0, 0, Accent | Stretchy},             // TOP CURLY BRACKET
	{0x23DF, Postfix}: {0, 0, Accent | Stretchy},             // BOTTOM CURLY BRACKET
	{0x221A, Prefix}:  {0, 0, Stretchy},                      // SQUARE ROOT (radical sign itself)

	{0x2192, Infix}: {5, 5, 0},
}

// Lookup finds the dictionary entry for a character in the given form,
// falling back to the Infix form, then to DefaultEntry.
func Lookup(char rune, form Form) Entry {
	if e, ok := table[key{char, form}]; ok {
		return e
	}
	if form != Infix {
		if e, ok := table[key{char, Infix}]; ok {
			return e
		}
	}
	return DefaultEntry
}

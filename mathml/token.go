package mathml

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/typeset/mathlayout/layout"
)

// MathVariant selects a Unicode mathematical-alphanumeric substitution
// applied character-by-character to token text.
type MathVariant int

const (
	VariantNormal MathVariant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
	VariantDoubleStruck
	VariantFraktur
	VariantScript
	VariantBoldFraktur
	VariantBoldScript
	VariantSansSerif
	VariantSansSerifBold
	VariantSansSerifItalic
	VariantSansSerifBoldItalic
	VariantMonospace
)

var variantByAttr = map[string]MathVariant{
	"normal":                 VariantNormal,
	"bold":                   VariantBold,
	"italic":                 VariantItalic,
	"bold-italic":            VariantBoldItalic,
	"double-struck":          VariantDoubleStruck,
	"fraktur":                VariantFraktur,
	"script":                 VariantScript,
	"bold-fraktur":           VariantBoldFraktur,
	"bold-script":            VariantBoldScript,
	"sans-serif":             VariantSansSerif,
	"sans-serif-bold":        VariantSansSerifBold,
	"sans-serif-italic":      VariantSansSerifItalic,
	"sans-serif-bold-italic": VariantSansSerifBoldItalic,
	"monospace":              VariantMonospace,
}

// parseMathVariant parses the `mathvariant` attribute value.
func parseMathVariant(s string) (MathVariant, bool) {
	v, ok := variantByAttr[s]
	return v, ok
}

// alphaBlockStart gives the U+1D400-range base offset for each variant's
// {A..Z, a..z} run, laid out in the systematic order the Unicode block
// uses: 26 capitals then 26 lowercase per variant, 52 code points apart.
var alphaBlockStart = map[MathVariant]rune{
	VariantBold:                0x1D400,
	VariantItalic:               0x1D434,
	VariantBoldItalic:           0x1D468,
	VariantScript:               0x1D49C,
	VariantBoldScript:           0x1D4D0,
	VariantFraktur:              0x1D504,
	VariantDoubleStruck:         0x1D538,
	VariantBoldFraktur:          0x1D56C,
	VariantSansSerif:            0x1D5A0,
	VariantSansSerifBold:        0x1D5D4,
	VariantSansSerifItalic:      0x1D608,
	VariantSansSerifBoldItalic:  0x1D63C,
	VariantMonospace:            0x1D670,
}

// digitBlockStart gives the base offset for each variant's {0..9} run in
// the digits-only tail of the mathematical-alphanumeric block. Variants
// without a digit substitution (italic, script, fraktur and their bold
// forms, sans-serif-italic) fall through unmapped.
var digitBlockStart = map[MathVariant]rune{
	VariantBold:          0x1D7CE,
	VariantDoubleStruck:  0x1D7D8,
	VariantSansSerif:     0x1D7E2,
	VariantSansSerifBold: 0x1D7EC,
	VariantMonospace:     0x1D7F6,
}

// holeExceptions are the handful of letters whose systematic astral code
// point is a surrogate/reserved hole, filled instead by a pre-existing
// Letterlike Symbols compatibility character. This is the same short
// exception list the Unicode mathvariant mapping annex documents.
var holeExceptions = map[rune]rune{
	// italic
	0x1D455: 0x210E, // italic h -> PLANCK CONSTANT
	// script
	0x1D49D: 0x212C, // script B -> SCRIPT CAPITAL B
	0x1D4A0: 0x2130, // script E
	0x1D4A1: 0x2131, // script F
	0x1D4A3: 0x210B, // script H
	0x1D4A4: 0x2110, // script I
	0x1D4A7: 0x2112, // script L
	0x1D4A8: 0x2133, // script M
	0x1D4AD: 0x211B, // script R
	0x1D4BA: 0x212F, // script e
	0x1D4BC: 0x210A, // script g
	0x1D4C4: 0x2134, // script o
	// fraktur
	0x1D506: 0x212D, // fraktur C
	0x1D50B: 0x210C, // fraktur H
	0x1D50C: 0x2111, // fraktur I
	0x1D515: 0x211C, // fraktur R
	0x1D51D: 0x2128, // fraktur Z
	// double-struck
	0x1D53A: 0x2102, // double-struck C
	0x1D53F: 0x210D, // double-struck H
	0x1D545: 0x2115, // double-struck N
	0x1D547: 0x2119, // double-struck P
	0x1D548: 0x211A, // double-struck Q
	0x1D549: 0x211D, // double-struck R
	0x1D551: 0x2124, // double-struck Z
}

// mapVariantRune maps a single rune through variant, returning the rune
// unchanged if it isn't an ASCII letter/digit or the variant is Normal.
func mapVariantRune(r rune, v MathVariant) rune {
	if v == VariantNormal {
		return r
	}
	switch {
	case r >= '0' && r <= '9':
		base, ok := digitBlockStart[v]
		if !ok {
			return normalizeMathVariant(r)
		}
		return base + (r - '0')
	case r >= 'A' && r <= 'Z':
		base, ok := alphaBlockStart[v]
		if !ok {
			return normalizeMathVariant(r)
		}
		mapped := base + (r - 'A')
		if alt, hole := holeExceptions[mapped]; hole {
			return alt
		}
		return mapped
	case r >= 'a' && r <= 'z':
		base, ok := alphaBlockStart[v]
		if !ok {
			return normalizeMathVariant(r)
		}
		mapped := base + 26 + (r - 'a')
		if alt, hole := holeExceptions[mapped]; hole {
			return alt
		}
		return mapped
	default:
		return r
	}
}

// normalizeMathVariant is the fallback used when a variant has no astral
// substitution for a rune (e.g. italic digits don't exist in Unicode): it
// folds any existing compatibility width variant of the rune to its
// canonical form rather than inventing a code point, leaving the source
// character as the best available rendering.
func normalizeMathVariant(r rune) rune {
	return width.Fold(r)
}

// applyMathVariant maps every rune of text through variant.
func applyMathVariant(text string, v MathVariant) string {
	if v == VariantNormal {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(mapVariantRune(r, v))
	}
	return b.String()
}

// defaultVariantForMi returns the implicit variant for an <mi> lacking an
// explicit mathvariant: single-character identifiers default to italic,
// multi-character identifiers stay normal.
func defaultVariantForMi(text string) MathVariant {
	if len([]rune(text)) == 1 {
		return VariantItalic
	}
	return VariantNormal
}

// normalizeTokenText NFC-normalizes raw token character data before any
// entity or variant mapping is applied, so combining-mark ordering
// differences between MathML producers don't leak into glyph lookup.
func normalizeTokenText(s string) string {
	return norm.NFC.String(s)
}

// Direction is the parsed `dir` attribute. The parser validates `dir`
// (any other value is a BadAttribute error) but does not store the value
// on the tree, and layout does not honor RTL reordering.
type Direction int

const (
	DirLTR Direction = iota
	DirRTL
)

func parseDirection(s string) (Direction, bool) {
	switch s {
	case "ltr":
		return DirLTR, true
	case "rtl":
		return DirRTL, true
	default:
		return DirLTR, false
	}
}

// parseBool accepts exactly "true"/"false".
func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// parseLength accepts a real number optionally followed by "em" or "pt";
// unknown or absent units fall back to points.
func parseLength(s string) (layout.Length, bool) {
	s = strings.TrimSpace(s)
	unit := layout.UnitPoint
	numPart := s
	switch {
	case strings.HasSuffix(s, "em"):
		unit = layout.UnitEm
		numPart = strings.TrimSuffix(s, "em")
	case strings.HasSuffix(s, "pt"):
		unit = layout.UnitPoint
		numPart = strings.TrimSuffix(s, "pt")
	default:
		numPart = strings.TrimRightFunc(s, func(r rune) bool { return unicode.IsLetter(r) || r == '%' })
	}
	numPart = strings.TrimSpace(numPart)
	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return layout.Length{}, false
	}
	return layout.Length{Value: v, Unit: unit}, true
}

// eighteenthsToEm converts an operator-dictionary spacing value
// (eighteenths of an em) to an Em length.
func eighteenthsToEm(v int) layout.Length {
	return layout.EmLength(float64(v) / 18.0)
}

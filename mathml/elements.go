package mathml

// Element names the fixed, small MathML element taxonomy this parser
// accepts. Anything outside this set is a ParseError.UnknownElement.
type Element int

const (
	ElementMath Element = iota
	ElementMrow
	ElementMi
	ElementMn
	ElementMo
	ElementMtext
	ElementMspace
	ElementMsub
	ElementMsup
	ElementMsubsup
	ElementMover
	ElementMunder
	ElementMunderover
	ElementMfrac
	ElementMsqrt
	ElementMroot
)

func (e Element) String() string {
	switch e {
	case ElementMath:
		return "math"
	case ElementMrow:
		return "mrow"
	case ElementMi:
		return "mi"
	case ElementMn:
		return "mn"
	case ElementMo:
		return "mo"
	case ElementMtext:
		return "mtext"
	case ElementMspace:
		return "mspace"
	case ElementMsub:
		return "msub"
	case ElementMsup:
		return "msup"
	case ElementMsubsup:
		return "msubsup"
	case ElementMover:
		return "mover"
	case ElementMunder:
		return "munder"
	case ElementMunderover:
		return "munderover"
	case ElementMfrac:
		return "mfrac"
	case ElementMsqrt:
		return "msqrt"
	case ElementMroot:
		return "mroot"
	default:
		return "unknown"
	}
}

// elementByName maps MathML tag local names to Element, for recognition by
// the decoder loop.
var elementByName = map[string]Element{
	"math":       ElementMath,
	"mrow":       ElementMrow,
	"mi":         ElementMi,
	"mn":         ElementMn,
	"mo":         ElementMo,
	"mtext":      ElementMtext,
	"mspace":     ElementMspace,
	"msub":       ElementMsub,
	"msup":       ElementMsup,
	"msubsup":    ElementMsubsup,
	"mover":      ElementMover,
	"munder":     ElementMunder,
	"munderover": ElementMunderover,
	"mfrac":      ElementMfrac,
	"msqrt":      ElementMsqrt,
	"mroot":      ElementMroot,
}

// LookupElement resolves a tag local name, reporting false for anything
// outside the supported taxonomy (including mglyph, malignmark, and the
// MathML-3 table/matrix/multiscript elements this subset omits).
func LookupElement(name string) (Element, bool) {
	e, ok := elementByName[name]
	return e, ok
}

// schema describes how many children an element's content model requires,
// used to validate arity and to choose the normalizer rule in build.go.
type schema int

const (
	schemaToken   schema = iota // mi, mn, mtext, mo, mspace: no element children, text content only
	schemaList                  // mrow, math, msqrt: any number of children
	schemaFixed2                // mfrac, mroot: exactly 2 children
	schemaFixed2Or3Scripts       // msub/msup (2), msubsup (3)
	schemaFixed2Or3OverUnder     // mover/munder (2), munderover (3)
)

func schemaOf(e Element) schema {
	switch e {
	case ElementMi, ElementMn, ElementMtext, ElementMo, ElementMspace:
		return schemaToken
	case ElementMrow, ElementMath, ElementMsqrt:
		return schemaList
	case ElementMfrac, ElementMroot:
		return schemaFixed2
	case ElementMsub, ElementMsup, ElementMsubsup:
		return schemaFixed2Or3Scripts
	case ElementMover, ElementMunder, ElementMunderover:
		return schemaFixed2Or3OverUnder
	default:
		return schemaList
	}
}

// arity returns the exact number of element children required, or -1 for
// the variable-arity list schema.
func arity(e Element) int {
	switch e {
	case ElementMrow, ElementMath, ElementMsqrt:
		return -1
	case ElementMfrac, ElementMroot, ElementMsub, ElementMsup, ElementMover, ElementMunder:
		return 2
	case ElementMsubsup, ElementMunderover:
		return 3
	default:
		return -1
	}
}

package mathexpr

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/opdict"
)

// NodeID is a stable key used to associate parser-time side information
// (operator attributes, text direction) with a tree node without widening
// the node's own variant. Zero means "no side info attached."
type NodeID int

// Kind tags the closed set of expression variants. Layout dispatches on
// Kind with a switch, never through virtual methods: the variant set is
// fixed by the MathML element taxonomy and is not meant to grow.
type Kind int

const (
	KindField Kind = iota
	KindSpace
	KindAtom
	KindOverUnder
	KindFraction
	KindRoot
	KindOperator
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindSpace:
		return "Space"
	case KindAtom:
		return "Atom"
	case KindOverUnder:
		return "OverUnder"
	case KindFraction:
		return "GeneralizedFraction"
	case KindRoot:
		return "Root"
	case KindOperator:
		return "Operator"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// FieldKind tags the leaf content variants of a Field.
type FieldKind int

const (
	FieldEmpty FieldKind = iota
	FieldUnicode
	FieldGlyph
)

// Field is leaf content: either nothing, a run of Unicode text to be
// shaped, or a single pre-resolved glyph.
type Field struct {
	Kind       FieldKind
	Text       string
	GlyphID    uint16
	GlyphScale layout.PercentScale // 0 means "no explicit scale" (100 assumed)
}

// EmptyField constructs the absent-content field.
func EmptyField() Field { return Field{Kind: FieldEmpty} }

// UnicodeField constructs a text field.
func UnicodeField(text string) Field { return Field{Kind: FieldUnicode, Text: text} }

// GlyphField constructs a single-glyph field.
func GlyphField(id uint16, scale layout.PercentScale) Field {
	return Field{Kind: FieldGlyph, GlyphID: id, GlyphScale: scale}
}

// IsEmpty reports whether the field carries no content, the
// "Empty field or None both mean absent" case from the data model.
func (f Field) IsEmpty() bool { return f.Kind == FieldEmpty }

// StretchConstraints describes a stretchy operator's sizing envelope; it is
// present on an Operator item iff the Stretchy flag is set.
type StretchConstraints struct {
	MinSize   *layout.Length
	MaxSize   *layout.Length
	Symmetric bool
}

// Expr is a node of the expression tree. Only the fields relevant to Kind
// are meaningful; this mirrors the tagged-union-with-switch idiom used
// throughout the layout engine rather than an interface hierarchy, since
// the variant set is closed and small.
type Expr struct {
	Kind Kind
	ID   NodeID

	// KindField
	Field Field

	// KindSpace
	SpaceWidth, SpaceAscent, SpaceDescent layout.Length

	// KindAtom
	Nucleus                                    *Expr
	TopLeft, TopRight, BottomLeft, BottomRight *Expr

	// KindOverUnder (also uses Nucleus above)
	Over, Under                   *Expr
	OverIsAccent, UnderIsAccent   bool
	IsLimits                      bool

	// KindFraction
	Numerator, Denominator *Expr
	Thickness              *layout.Length

	// KindRoot
	Radicand, Degree *Expr

	// KindOperator
	OpField   Field
	LSpace    layout.Length
	RSpace    layout.Length
	Flags     opdict.Flags
	Stretch   *StretchConstraints
	IsLargeOp bool

	// KindList
	Children []*Expr
}

// NewField wraps a Field leaf in an expression node.
func NewField(f Field) *Expr { return &Expr{Kind: KindField, Field: f} }

// NewSpace constructs a Space node.
func NewSpace(width, ascent, descent layout.Length) *Expr {
	return &Expr{Kind: KindSpace, SpaceWidth: width, SpaceAscent: ascent, SpaceDescent: descent}
}

// NewAtom constructs an Atom node. Any of the attachments may be nil,
// meaning absent.
func NewAtom(nucleus, topLeft, topRight, bottomLeft, bottomRight *Expr) *Expr {
	return &Expr{
		Kind: KindAtom, Nucleus: nucleus,
		TopLeft: topLeft, TopRight: topRight,
		BottomLeft: bottomLeft, BottomRight: bottomRight,
	}
}

// HasAnyAttachments reports whether the atom carries at least one
// sub/superscript corner.
func (e *Expr) HasAnyAttachments() bool {
	return e.TopLeft != nil || e.TopRight != nil || e.BottomLeft != nil || e.BottomRight != nil
}

// NewOverUnder constructs an OverUnder node.
func NewOverUnder(nucleus, over, under *Expr, overAccent, underAccent bool) *Expr {
	return &Expr{
		Kind: KindOverUnder, Nucleus: nucleus,
		Over: over, Under: under,
		OverIsAccent: overAccent, UnderIsAccent: underAccent,
	}
}

// NewFraction constructs a GeneralizedFraction node. thickness of nil means
// "use the shaper's default rule thickness."
func NewFraction(num, denom *Expr, thickness *layout.Length) *Expr {
	return &Expr{Kind: KindFraction, Numerator: num, Denominator: denom, Thickness: thickness}
}

// NewRoot constructs a Root node. degree of nil means a plain square root.
func NewRoot(radicand, degree *Expr) *Expr {
	return &Expr{Kind: KindRoot, Radicand: radicand, Degree: degree}
}

// NewOperator constructs a resolved Operator node.
func NewOperator(field Field, lspace, rspace layout.Length, flags opdict.Flags, stretch *StretchConstraints, isLargeOp bool) *Expr {
	return &Expr{
		Kind: KindOperator, OpField: field,
		LSpace: lspace, RSpace: rspace, Flags: flags,
		Stretch: stretch, IsLargeOp: isLargeOp,
	}
}

// NewList constructs a List node, collapsing to its sole child when there
// is exactly one, matching how mrow/math/argument-list containers of a
// single child are treated as that child directly.
func NewList(children []*Expr) *Expr {
	if len(children) == 1 {
		return children[0]
	}
	return &Expr{Kind: KindList, Children: children}
}

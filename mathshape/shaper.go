package mathshape

import (
	"fmt"
	"sync/atomic"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mbox"
)

// MathConstant enumerates the named OpenType MATH table constants the
// layout engine queries. The set matches the table's own "MathConstants"
// subtable fields.
type MathConstant int

const (
	ScriptPercentScaleDown MathConstant = iota
	ScriptScriptPercentScaleDown
	DelimitedSubFormulaMinHeight
	DisplayOperatorMinHeight
	MathLeading
	AxisHeight
	AccentBaseHeight
	FlattenedAccentBaseHeight
	SubscriptShiftDown
	SubscriptTopMax
	SubscriptBaselineDropMin
	SuperscriptShiftUp
	SuperscriptShiftUpCramped
	SuperscriptBottomMin
	SuperscriptBaselineDropMax
	SubSuperscriptGapMin
	SuperscriptBottomMaxWithSubscript
	SpaceAfterScript
	UpperLimitGapMin
	UpperLimitBaselineRiseMin
	LowerLimitGapMin
	LowerLimitBaselineDropMin
	StackTopShiftUp
	StackTopDisplayStyleShiftUp
	StackBottomShiftDown
	StackBottomDisplayStyleShiftDown
	StackGapMin
	StackDisplayStyleGapMin
	StretchStackTopShiftUp
	StretchStackBottomShiftDown
	StretchStackGapAboveMin
	StretchStackGapBelowMin
	FractionNumeratorShiftUp
	FractionNumeratorDisplayStyleShiftUp
	FractionDenominatorShiftDown
	FractionDenominatorDisplayStyleShiftDown
	FractionNumeratorGapMin
	FractionNumDisplayStyleGapMin
	FractionRuleThickness
	FractionDenominatorGapMin
	FractionDenomDisplayStyleGapMin
	SkewedFractionHorizontalGap
	SkewedFractionVerticalGap
	OverbarVerticalGap
	OverbarRuleThickness
	OverbarExtraAscender
	UnderbarVerticalGap
	UnderbarRuleThickness
	UnderbarExtraDescender
	RadicalVerticalGap
	RadicalDisplayStyleVerticalGap
	RadicalRuleThickness
	RadicalExtraAscender
	RadicalKernBeforeDegree
	RadicalKernAfterDegree
	RadicalDegreeBottomRaisePercent
	MinConnectorOverlap

	numMathConstants
)

// CornerPosition names one of the four corners a math kern table entry
// applies to.
type CornerPosition int

const (
	TopLeft CornerPosition = iota
	TopRight
	BottomLeft
	BottomRight
)

// HorizontalMirror swaps left and right.
func (c CornerPosition) HorizontalMirror() CornerPosition {
	switch c {
	case TopLeft:
		return TopRight
	case TopRight:
		return TopLeft
	case BottomLeft:
		return BottomRight
	default:
		return BottomLeft
	}
}

// VerticalMirror swaps top and bottom.
func (c CornerPosition) VerticalMirror() CornerPosition {
	switch c {
	case TopLeft:
		return BottomLeft
	case BottomLeft:
		return TopLeft
	case TopRight:
		return BottomRight
	default:
		return TopRight
	}
}

// DiagonalMirror composes both mirrors: diagonal(c) = vertical(horizontal(c)).
func (c CornerPosition) DiagonalMirror() CornerPosition {
	return c.HorizontalMirror().VerticalMirror()
}

// Shaper is the contract the layout engine requires of the font layer.
// Implementations must guard against concurrent re-entrant shaping calls
// against the same instance (ReentrantShapeError); the shapingGuard helper
// in this package provides that behavior for embedders.
type Shaper interface {
	// EmSize returns the font's units-per-em.
	EmSize() int32

	// MathConstant returns the resolved value of a MATH table constant in
	// font design units.
	MathConstant(kind MathConstant) layout.Abs

	GlyphAdvance(glyph uint16) layout.Abs
	GlyphExtents(glyph uint16) (ascent, descent layout.Abs)
	GlyphBounds(glyph uint16) mbox.Bounds
	ItalicCorrection(glyph uint16) layout.Abs
	TopAccentAttachment(glyph uint16) layout.Abs

	// MathKern looks up the per-corner kerning curve at the given
	// correction height.
	MathKern(glyph uint16, corner CornerPosition, correctionHeight layout.Abs) layout.Abs

	// ShapeString shapes a run of text at the scale implied by style's
	// script level, returning an ordered sequence of glyph boxes.
	ShapeString(text string, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error)

	// ShapeStretchy shapes a stretchy operator to at least targetSize
	// along the requested axis, selecting a precomposed variant or
	// synthesizing a glyph assembly.
	ShapeStretchy(text string, horizontal bool, targetSize layout.Abs, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error)
}

// ReentrantShapeError is returned (see shapingGuard) when a second shaping
// call is attempted while one is already outstanding against the same
// shaper.
type ReentrantShapeError struct {
	Shaper string
}

func (e *ReentrantShapeError) Error() string {
	return fmt.Sprintf("mathshape: re-entrant shaping call on %s while one is already outstanding", e.Shaper)
}

// shapingGuard enforces the single-outstanding-call constraint on a
// shaper's shared shaping buffer. Embed it in a Shaper implementation and
// wrap every buffer-touching method body between Enter/Exit.
type shapingGuard struct {
	busy atomic.Bool
	name string
}

func newShapingGuard(name string) *shapingGuard {
	return &shapingGuard{name: name}
}

// Enter marks the shaper busy, returning an error if it already is.
func (g *shapingGuard) Enter() error {
	if !g.busy.CompareAndSwap(false, true) {
		return &ReentrantShapeError{Shaper: g.name}
	}
	return nil
}

// Exit releases the busy flag.
func (g *shapingGuard) Exit() {
	g.busy.Store(false)
}

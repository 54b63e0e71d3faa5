package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// radicalSymbol is the Unicode square-root glyph the surd is shaped from;
// higher-index roots reuse the same symbol, distinguished only by the
// degree box placed at its upper-left.
const radicalSymbol = "√"

// layoutRoot lays out a radicand under a stretchy surd, with an optional
// degree kerned into the surd's upper-left corner.
func layoutRoot(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	radicand := layoutExpr(e.Radicand, shaper, style)

	gapConst := mathshape.RadicalVerticalGap
	if style.MathStyle == mathexpr.Display {
		gapConst = mathshape.RadicalDisplayStyleVerticalGap
	}
	gap := shaper.MathConstant(gapConst)
	thickness := shaper.MathConstant(mathshape.RadicalRuleThickness)

	needed := radicand.Height() + gap + thickness
	surd := shapeRadicalSymbol(shaper, style, needed)

	// TeXbook page 443, rule 11: split any surplus height evenly above and
	// below the radicand by folding it into the gap.
	if free := surd.Height() - thickness - radicand.Height(); free > gap {
		gap = (gap + free) / 2
	}

	surdAscent := radicand.Ascent() + gap + thickness

	var degree *mbox.MathBox
	groupShift := layout.Abs(0)
	if e.Degree != nil {
		degree = layoutExpr(e.Degree, shaper, style.RadicalDegreeStyle())
		kernBefore := shaper.MathConstant(mathshape.RadicalKernBeforeDegree)
		kernAfter := shaper.MathConstant(mathshape.RadicalKernAfterDegree)
		groupShift = kernBefore + degree.Width() + kernAfter

		raisePercent := shaper.MathConstant(mathshape.RadicalDegreeBottomRaisePercent)
		surdOriginY := surd.Ascent() - surdAscent
		bottomY := surdOriginY + surd.Descent() - surd.Height()*raisePercent/100
		degree.Origin = layout.Point{X: kernBefore, Y: bottomY - degree.Descent()}
	}

	surd.Origin = layout.Point{X: groupShift, Y: surd.Ascent() - surdAscent}
	radicand.Origin = layout.Point{X: groupShift + surd.Width(), Y: 0}

	rule := mbox.NewMathBox(mbox.LineContent(layout.Point{X: radicand.Width()}, thickness))
	rule.Origin = layout.Point{X: radicand.Origin.X, Y: surd.Origin.Y - surd.Ascent() + thickness}

	boxes := []*mbox.MathBox{surd, rule, radicand}
	if degree != nil {
		boxes = append(boxes, degree)
	}
	boxes = appendAscentMarker(boxes, shaper.MathConstant(mathshape.RadicalExtraAscender))

	return mbox.NewMathBox(mbox.BoxesContent(boxes))
}

// shapeRadicalSymbol shapes the surd glyph (or assembly) to at least the
// needed height along the vertical axis, falling back to an empty box on a
// shaping failure.
func shapeRadicalSymbol(shaper mathshape.Shaper, style mathexpr.LayoutStyle, needed layout.Abs) *mbox.MathBox {
	boxes, err := shaper.ShapeStretchy(radicalSymbol, false, needed, style)
	if err != nil || len(boxes) == 0 {
		return emptyBox()
	}
	return composeShaped(boxes)
}

// appendAscentMarker returns boxes with one additional zero-extent marker
// appended that raises the composite's computed ascent by extra above
// whatever boxes alone would naturally produce.
func appendAscentMarker(boxes []*mbox.MathBox, extra layout.Abs) []*mbox.MathBox {
	if extra == 0 {
		return boxes
	}
	provisional := mbox.NewMathBox(mbox.BoxesContent(boxes))
	marker := mbox.NewSizedEmptyBox(mbox.Extents{})
	marker.Origin = layout.Point{Y: -(provisional.Ascent() + extra)}
	return append(boxes, marker)
}

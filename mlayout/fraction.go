package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutFraction lays out a numerator/rule/denominator stack. The
// denominator is always laid out cramped; the numerator only inherits
// crampedness from the surrounding context.
func layoutFraction(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	num := layoutExpr(e.Numerator, shaper, style)
	denom := layoutExpr(e.Denominator, shaper, style.CrampedStyle())

	thickness := shaper.MathConstant(mathshape.FractionRuleThickness)
	if e.Thickness != nil {
		thickness = resolveLength(*e.Thickness, shaper)
	}

	var numUp, denomDown, numGapMin, denomGapMin mathshape.MathConstant
	if style.MathStyle == mathexpr.Display {
		numUp, denomDown = mathshape.FractionNumeratorDisplayStyleShiftUp, mathshape.FractionDenominatorDisplayStyleShiftDown
		numGapMin, denomGapMin = mathshape.FractionNumDisplayStyleGapMin, mathshape.FractionDenomDisplayStyleGapMin
	} else {
		numUp, denomDown = mathshape.FractionNumeratorShiftUp, mathshape.FractionDenominatorShiftDown
		numGapMin, denomGapMin = mathshape.FractionNumeratorGapMin, mathshape.FractionDenominatorGapMin
	}

	axis := shaper.MathConstant(mathshape.AxisHeight)
	numShift := (shaper.MathConstant(numUp) - axis).Max(shaper.MathConstant(numGapMin) + thickness/2 + num.Descent())
	denomShift := (shaper.MathConstant(denomDown) - axis).Max(shaper.MathConstant(denomGapMin) + thickness/2 + denom.Ascent())

	numY := -(axis + numShift)
	denomY := axis + denomShift

	barWidth := num.Width().Max(denom.Width())
	num.Origin = layout.Point{X: centerRel(barWidth, num.Width()), Y: numY}
	denom.Origin = layout.Point{X: centerRel(barWidth, denom.Width()), Y: denomY}

	if thickness == 0 {
		// Zero rule thickness means stack layout: no line box at all.
		return mbox.NewMathBox(mbox.BoxesContent([]*mbox.MathBox{num, denom}))
	}

	bar := mbox.NewMathBox(mbox.LineContent(layout.Point{X: barWidth}, thickness))
	bar.Origin = layout.Point{Y: -axis + thickness/2}

	return mbox.NewMathBox(mbox.BoxesContent([]*mbox.MathBox{num, bar, denom}))
}

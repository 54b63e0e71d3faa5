package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// isStretchyOperator reports whether a direct list child is an Operator
// item with the STRETCHY flag set (Stretch constraints attached), the set
// of items List postpones to its second pass.
func isStretchyOperator(e *mathexpr.Expr) bool {
	return e.Kind == mathexpr.KindOperator && e.Stretch != nil
}

// shapeStretchyTo shapes a stretchy operator's field to fill a target size
// along the given axis, applying the symmetric-about-axis rebalance (vertical
// axis only: math-axis centering has no meaning for a horizontal stretch) and
// min/max clamp from its StretchConstraints, and the display large-operator
// minimum height rule.
func shapeStretchyTo(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle, horizontal bool, ascent, descent layout.Abs) *mbox.MathBox {
	if !horizontal && e.Stretch.Symmetric {
		axis := shaper.MathConstant(mathshape.AxisHeight)
		a2 := (ascent - axis).Max(descent + axis) + axis
		d2 := (ascent - axis).Max(descent + axis) - axis
		ascent, descent = a2, d2
	}

	target := ascent + descent
	if e.Stretch.MinSize != nil {
		target = target.Max(resolveLength(*e.Stretch.MinSize, shaper))
	}
	if e.Stretch.MaxSize != nil {
		target = target.Min(resolveLength(*e.Stretch.MaxSize, shaper))
	}
	if e.IsLargeOp && style.MathStyle == mathexpr.Display {
		target = target.Max(shaper.MathConstant(mathshape.DisplayOperatorMinHeight))
	}

	boxes, err := shaper.ShapeStretchy(e.OpField.Text, horizontal, target, style)
	if err != nil || len(boxes) == 0 {
		return emptyBox()
	}
	return composeShaped(boxes)
}

package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutList lays out a row of sibling expressions left to right. Stretchy
// operator children are postponed: laid out only after every other child
// establishes the row's target ascent/descent, then sized to match. In
// display style, non-stretchy operator children get empty spacer boxes
// inserted on either side sized to their resolved lspace/rspace; stretchy
// operator children get no spacer boxes in either style.
func layoutList(children []*mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	type slot struct {
		stretchy *mathexpr.Expr
		box      *mbox.MathBox
	}

	slots := make([]slot, 0, len(children))
	var stretchyAt []int
	var targetAscent, targetDescent layout.Abs

	note := func(b *mbox.MathBox) {
		if a := b.Ascent(); a > targetAscent {
			targetAscent = a
		}
		if d := b.Descent(); d > targetDescent {
			targetDescent = d
		}
	}

	for _, c := range children {
		if isStretchyOperator(c) {
			slots = append(slots, slot{stretchy: c})
			stretchyAt = append(stretchyAt, len(slots)-1)
			continue
		}

		if style.MathStyle == mathexpr.Display && c.Kind == mathexpr.KindOperator {
			lspace := resolveLength(c.LSpace, shaper)
			rspace := resolveLength(c.RSpace, shaper)
			opBox := layoutExpr(c, shaper, style)
			slots = append(slots,
				slot{box: mbox.NewSizedEmptyBox(mbox.Extents{Width: lspace})},
				slot{box: opBox},
				slot{box: mbox.NewSizedEmptyBox(mbox.Extents{Width: rspace})},
			)
			note(opBox)
			continue
		}

		b := layoutExpr(c, shaper, style)
		slots = append(slots, slot{box: b})
		note(b)
	}

	if style.StretchSize != nil {
		targetAscent = targetAscent.Min(style.StretchSize.Ascent)
		targetDescent = targetDescent.Min(style.StretchSize.Descent)
	}

	for _, i := range stretchyAt {
		slots[i].box = shapeStretchyTo(slots[i].stretchy, shaper, style, false, targetAscent, targetDescent)
	}

	boxes := make([]*mbox.MathBox, len(slots))
	for i, s := range slots {
		boxes[i] = s.box
	}
	return assembleRow(boxes)
}

// assembleRow positions boxes left to right on a shared baseline and wraps
// them as a single composite box.
func assembleRow(boxes []*mbox.MathBox) *mbox.MathBox {
	pen := layout.Abs(0)
	for _, b := range boxes {
		b.Origin = layout.Point{X: pen, Y: 0}
		pen += b.Width()
	}
	return mbox.NewMathBox(mbox.BoxesContent(boxes))
}

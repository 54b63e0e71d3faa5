package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutAtom lays out a nucleus together with its sub/superscript corners.
// top_right/bottom_right are the post-scripts produced by msup/msub/msubsup;
// top_left/bottom_left are carried by the data model for completeness and
// laid out symmetrically (mirrored kerning, scripts placed before the
// nucleus instead of after).
func layoutAtom(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	nucleus := layoutExpr(e.Nucleus, shaper, style)
	if !e.HasAnyAttachments() {
		return nucleus
	}

	supStyle := style.SuperscriptStyle()
	subStyle := style.SubscriptStyle()

	var tl, tr, bl, br *mbox.MathBox
	if e.TopLeft != nil {
		tl = layoutExpr(e.TopLeft, shaper, supStyle)
	}
	if e.TopRight != nil {
		tr = layoutExpr(e.TopRight, shaper, supStyle)
	}
	if e.BottomLeft != nil {
		bl = layoutExpr(e.BottomLeft, shaper, subStyle)
	}
	if e.BottomRight != nil {
		br = layoutExpr(e.BottomRight, shaper, subStyle)
	}

	supShift, subShift := scriptShifts(shaper, style, nucleus, tl, tr, bl, br)
	spaceAfter := shaper.MathConstant(mathshape.SpaceAfterScript)
	italic := nucleus.ItalicCorrection()

	var tlKern, blKern, trKern, brKern layout.Abs
	if tl != nil {
		tlKern = attachmentKern(nucleus, tl, mathshape.TopLeft, supShift, shaper)
	}
	if bl != nil {
		blKern = attachmentKern(nucleus, bl, mathshape.BottomLeft, subShift, shaper)
	}
	if tr != nil {
		trKern = attachmentKern(nucleus, tr, mathshape.TopRight, supShift, shaper) + italic
	}
	if br != nil {
		brKern = attachmentKern(nucleus, br, mathshape.BottomRight, subShift, shaper)
	}

	preWidth := preScriptWidth(tl, tlKern, spaceAfter).Max(preScriptWidth(bl, blKern, spaceAfter))

	boxes := make([]*mbox.MathBox, 0, 5)
	nucleus.Origin = layout.Point{X: preWidth, Y: 0}
	boxes = append(boxes, nucleus)

	if tl != nil {
		tl.Origin = layout.Point{X: preWidth - tlKern - tl.Width(), Y: -supShift}
		boxes = append(boxes, tl)
	}
	if bl != nil {
		bl.Origin = layout.Point{X: preWidth - blKern - bl.Width(), Y: subShift}
		boxes = append(boxes, bl)
	}
	if tr != nil {
		tr.Origin = layout.Point{X: preWidth + nucleus.Width() + trKern, Y: -supShift}
		boxes = append(boxes, tr)
	}
	if br != nil {
		br.Origin = layout.Point{X: preWidth + nucleus.Width() + brKern, Y: subShift}
		boxes = append(boxes, br)
	}

	return mbox.NewMathBox(mbox.BoxesContent(boxes))
}

// preScriptWidth is the horizontal room a pre-script corner (with its kern
// and trailing space) occupies before the nucleus; zero if absent.
func preScriptWidth(script *mbox.MathBox, kern, spaceAfter layout.Abs) layout.Abs {
	if script == nil {
		return 0
	}
	return script.Width() + kern + spaceAfter
}

// scriptShifts computes the vertical shift applied to the superscript pair
// (top_left/top_right) and the subscript pair (bottom_left/bottom_right),
// then enforces the minimum gap between a script pair sharing a side.
func scriptShifts(shaper mathshape.Shaper, style mathexpr.LayoutStyle, nucleus, tl, tr, bl, br *mbox.MathBox) (supShift, subShift layout.Abs) {
	if tl != nil || tr != nil {
		up := shaper.MathConstant(mathshape.SuperscriptShiftUp)
		if style.IsCramped {
			up = shaper.MathConstant(mathshape.SuperscriptShiftUpCramped)
		}
		bottomMin := shaper.MathConstant(mathshape.SuperscriptBottomMin)
		dropMax := shaper.MathConstant(mathshape.SuperscriptBaselineDropMax)

		supShift = up.Max(nucleus.Ascent() - dropMax)
		if tl != nil {
			supShift = supShift.Max(bottomMin + tl.Descent())
		}
		if tr != nil {
			supShift = supShift.Max(bottomMin + tr.Descent())
		}
	}

	if bl != nil || br != nil {
		down := shaper.MathConstant(mathshape.SubscriptShiftDown)
		dropMin := shaper.MathConstant(mathshape.SubscriptBaselineDropMin)
		topMax := shaper.MathConstant(mathshape.SubscriptTopMax)

		subShift = down.Max(nucleus.Descent() + dropMin)
		if bl != nil {
			subShift = subShift.Max(bl.Ascent() - topMax)
		}
		if br != nil {
			subShift = subShift.Max(br.Ascent() - topMax)
		}
	}

	gapMin := shaper.MathConstant(mathshape.SubSuperscriptGapMin)
	bottomMaxWithSub := shaper.MathConstant(mathshape.SuperscriptBottomMaxWithSubscript)
	enforceGap(&supShift, &subShift, tl, bl, gapMin, bottomMaxWithSub)
	enforceGap(&supShift, &subShift, tr, br, gapMin, bottomMaxWithSub)

	return supShift, subShift
}

// enforceGap raises supShift (up to bottomMaxWithSub) and, for any deficit
// left over, splits the remainder between both shifts so the visual gap
// between sup and sub on one side reaches gapMin.
func enforceGap(supShift, subShift *layout.Abs, sup, sub *mbox.MathBox, gapMin, bottomMaxWithSub layout.Abs) {
	if sup == nil || sub == nil {
		return
	}
	supBottom := *supShift - sup.Descent()
	subTop := sub.Ascent() - *subShift
	gap := supBottom - subTop
	if gap >= gapMin {
		return
	}
	deficit := gapMin - gap
	raise := (bottomMaxWithSub - supBottom).Clamp(0, deficit)
	rest := (deficit - raise) / 2
	*supShift += raise + rest
	*subShift += rest
}

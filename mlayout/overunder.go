package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutOverUnder lays out a nucleus with an optional over and/or under
// attachment. When is_limits is set and the active style is Inline, the
// construct instead falls back to Atom layout with over/under reinterpreted
// as post-super/subscripts, matching how movable-limits operators flatten
// to ordinary scripts outside display style.
func layoutOverUnder(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	if e.IsLimits && style.MathStyle == mathexpr.Inline {
		atom := &mathexpr.Expr{Kind: mathexpr.KindAtom, Nucleus: e.Nucleus, TopRight: e.Over, BottomRight: e.Under}
		return layoutAtom(atom, shaper, style)
	}

	nucleus := layoutExpr(e.Nucleus, shaper, style)
	if e.Over == nil && e.Under == nil {
		return nucleus
	}

	var over, under *mbox.MathBox
	if e.Over != nil {
		over = layoutOverUnderAttachment(e.Over, shaper, style, nucleus.Width())
	}
	if e.Under != nil {
		under = layoutOverUnderAttachment(e.Under, shaper, style, nucleus.Width())
	}

	// Every box's X is first computed relative to the nucleus sitting at 0,
	// then the whole group is shifted right so the leftmost box lands at 0.
	nucleusX := layout.Abs(0)
	overX, underX := layout.Abs(0), layout.Abs(0)
	left := layout.Abs(0)

	ascent := nucleus.Ascent()
	if over != nil {
		overX = overOffset(e.OverIsAccent, shaper, nucleus, over)
		left = left.Min(overX)
		gap := overGap(e.OverIsAccent, shaper, nucleus, over)
		over.Origin.Y = -(nucleus.Ascent() + gap + over.Descent())
		ascent = -over.Origin.Y + over.Ascent() + shaper.MathConstant(mathshape.OverbarExtraAscender)
	}

	descent := nucleus.Descent()
	if under != nil {
		underX = centerRel(nucleus.Width(), under.Width())
		left = left.Min(underX)
		gap := shaper.MathConstant(mathshape.UnderbarVerticalGap)
		under.Origin.Y = nucleus.Descent() + gap + under.Ascent()
		descent = under.Origin.Y + under.Descent() + shaper.MathConstant(mathshape.UnderbarExtraDescender)
	}

	shift := -left
	width := nucleusX + shift + nucleus.Width()
	boxes := make([]*mbox.MathBox, 0, 3)
	if over != nil {
		over.Origin.X = overX + shift
		boxes = append(boxes, over)
		width = width.Max(over.Origin.X + over.Width())
	}
	nucleus.Origin.X = nucleusX + shift
	boxes = append(boxes, nucleus)
	if under != nil {
		under.Origin.X = underX + shift
		boxes = append(boxes, under)
		width = width.Max(under.Origin.X + under.Width())
	}

	return wrapWithExtents(boxes, width, ascent, descent)
}

// layoutOverUnderAttachment lays out an over or under attachment. A stretchy
// operator attachment (e.g. a vector arrow accent over an identifier) is an
// exception to ordinary expression layout: rather than sizing to its own
// natural extent, it stretches horizontally to match the nucleus's width,
// the one case in this engine where a stretchy operator resolves along the
// horizontal axis instead of the vertical one.
func layoutOverUnderAttachment(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle, nucleusWidth layout.Abs) *mbox.MathBox {
	if isStretchyOperator(e) {
		return shapeStretchyTo(e, shaper, style, true, nucleusWidth, 0)
	}
	return layoutExpr(e, shaper, style)
}

// overGap is the vertical gap between nucleus ascent and the over box's
// descent: for an accent, collapsed toward AccentBaseHeight; otherwise a
// fixed OverbarVerticalGap.
func overGap(isAccent bool, shaper mathshape.Shaper, nucleus, over *mbox.MathBox) layout.Abs {
	if !isAccent {
		return shaper.MathConstant(mathshape.OverbarVerticalGap)
	}
	accentBaseHeight := shaper.MathConstant(mathshape.AccentBaseHeight)
	if nucleus.Ascent() <= accentBaseHeight {
		return accentBaseHeight - nucleus.Ascent()
	}
	return -over.Descent() - accentBaseHeight
}

// overOffset is the over box's X position relative to the nucleus sitting
// at 0: accents align top accent attachment points, non-accents center by
// logical width.
func overOffset(isAccent bool, shaper mathshape.Shaper, nucleus, over *mbox.MathBox) layout.Abs {
	if !isAccent {
		return centerRel(nucleus.Width(), over.Width())
	}
	return nucleus.TopAccentAttachment() - over.TopAccentAttachment()
}

// centerRel returns b's X offset when centered against a anchored at 0:
// positive shifts b right (a is wider), negative shifts it left (b is
// wider), zero when they match.
func centerRel(a, b layout.Abs) layout.Abs {
	return (a - b) / 2
}

// wrapWithExtents composes boxes as a single composite, then forces the
// result's ascent/descent to the given values (which may exceed the
// naturally-computed extents by the overbar/underbar extra-ascender and
// extra-descender constants) via zero-width marker boxes, since MathBox
// extents are always derived from child geometry rather than stored
// directly.
func wrapWithExtents(boxes []*mbox.MathBox, width, ascent, descent layout.Abs) *mbox.MathBox {
	ascentMarker := mbox.NewSizedEmptyBox(mbox.Extents{})
	ascentMarker.Origin = layout.Point{Y: -ascent}
	descentMarker := mbox.NewSizedEmptyBox(mbox.Extents{})
	descentMarker.Origin = layout.Point{Y: descent}
	widthMarker := mbox.NewSizedEmptyBox(mbox.Extents{Width: width})

	all := make([]*mbox.MathBox, 0, len(boxes)+3)
	all = append(all, boxes...)
	all = append(all, ascentMarker, descentMarker, widthMarker)
	return mbox.NewMathBox(mbox.BoxesContent(all))
}

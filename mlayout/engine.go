package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathml"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// Layout lays out a normalized expression tree against shaper, starting in
// display math style at script level 0, uncramped.
func Layout(expr *mathexpr.Expr, shaper mathshape.Shaper) *mbox.MathBox {
	return layoutExpr(expr, shaper, mathexpr.DisplayStyle())
}

// layoutExpr dispatches on the closed Expr variant set. Every branch either
// returns a box or delegates to a per-construct file in this package.
func layoutExpr(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	switch e.Kind {
	case mathexpr.KindField:
		return layoutField(e.Field, shaper, style)
	case mathexpr.KindSpace:
		return layoutSpace(e, shaper)
	case mathexpr.KindAtom:
		return layoutAtom(e, shaper, style)
	case mathexpr.KindOverUnder:
		return layoutOverUnder(e, shaper, style)
	case mathexpr.KindFraction:
		return layoutFraction(e, shaper, style)
	case mathexpr.KindRoot:
		return layoutRoot(e, shaper, style)
	case mathexpr.KindOperator:
		return layoutOperatorToken(e, shaper, style)
	case mathexpr.KindList:
		return layoutList(e.Children, shaper, style)
	default:
		panic(&mathml.LayoutAssertion{Message: "layout: unhandled expression kind " + e.Kind.String()})
	}
}

// resolveLength converts a parsed/dictionary Length to the shaper's design
// units. UnitDisplayOperatorMinHeight reads the shaper's own MATH constant,
// since a bare Length carries no reference to a shaper to look it up.
func resolveLength(l layout.Length, shaper mathshape.Shaper) layout.Abs {
	if l.Unit == layout.UnitDisplayOperatorMinHeight {
		return shaper.MathConstant(mathshape.DisplayOperatorMinHeight)
	}
	return l.Resolve(layout.Abs(shaper.EmSize()))
}

// composeShaped wraps a shaper's output sequence into a single box. A
// one-glyph result is returned directly; a multi-glyph result (ligature
// runs, stretchy assemblies) is wrapped as Boxes content, relying on the
// shaper to have already positioned each piece's Origin relative to the
// sequence's own frame.
func composeShaped(boxes []*mbox.MathBox) *mbox.MathBox {
	if len(boxes) == 1 {
		return boxes[0]
	}
	return mbox.NewMathBox(mbox.BoxesContent(boxes))
}

// emptyBox is the box substituted whenever shaping a field or stretchy
// target fails, per the total-layout failure policy.
func emptyBox() *mbox.MathBox {
	return mbox.NewMathBox(mbox.EmptyContent())
}

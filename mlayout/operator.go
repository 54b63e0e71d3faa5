package mlayout

import (
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutOperatorToken lays out a resolved Operator outside of the list-level
// stretch pass: a non-stretchy operator is just its shaped field; a
// stretchy one (reached directly, e.g. as an Atom nucleus, rather than as a
// list child) stretches to match its own natural size, which is a no-op
// unless StretchConstraints impose a min/max or large-operator floor.
func layoutOperatorToken(e *mathexpr.Expr, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	if e.Stretch == nil {
		return layoutField(e.OpField, shaper, style)
	}
	natural := layoutField(e.OpField, shaper, style)
	return shapeStretchyTo(e, shaper, style, false, natural.Ascent(), natural.Descent())
}

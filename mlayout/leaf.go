package mlayout

import (
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// layoutField lays out a Field leaf: Empty yields a zero-extent box, Unicode
// text is shaped via the shaper, a pre-resolved Glyph becomes a single
// glyph box directly.
func layoutField(f mathexpr.Field, shaper mathshape.Shaper, style mathexpr.LayoutStyle) *mbox.MathBox {
	switch f.Kind {
	case mathexpr.FieldEmpty:
		return emptyBox()
	case mathexpr.FieldGlyph:
		scale := f.GlyphScale
		if scale == 0 {
			scale = 100
		}
		return mbox.NewMathBox(mbox.GlyphContent(f.GlyphID, scale, shaper))
	case mathexpr.FieldUnicode:
		boxes, err := shaper.ShapeString(f.Text, style)
		if err != nil || len(boxes) == 0 {
			return emptyBox()
		}
		return composeShaped(boxes)
	default:
		return emptyBox()
	}
}

// layoutSpace turns a Space item's Length-valued extents into an Empty box
// sized to them; nothing is drawn.
func layoutSpace(e *mathexpr.Expr, shaper mathshape.Shaper) *mbox.MathBox {
	return mbox.NewSizedEmptyBox(mbox.Extents{
		Width:   resolveLength(e.SpaceWidth, shaper),
		Ascent:  resolveLength(e.SpaceAscent, shaper),
		Descent: resolveLength(e.SpaceDescent, shaper),
	})
}

package mlayout

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

// attachmentKern computes the math-kern correction between a nucleus and an
// attachment box sitting at corner. shift is the attachment's vertical
// offset from the nucleus's baseline (positive in the direction the
// attachment was shifted, i.e. up for a superscript, down for a
// subscript). Returns zero if either box has no glyph to key the kern
// table on (e.g. an empty nucleus or a composite with no leaf glyph).
func attachmentKern(nucleus, attachment *mbox.MathBox, corner mathshape.CornerPosition, shift layout.Abs, shaper mathshape.Shaper) layout.Abs {
	right := corner == mathshape.TopRight || corner == mathshape.BottomRight

	var nucGlyph, attGlyph uint16
	var okNuc, okAtt bool
	if right {
		nucGlyph, _, okNuc = nucleus.LastGlyph()
		attGlyph, _, okAtt = attachment.LastGlyph()
	} else {
		nucGlyph, _, okNuc = nucleus.FirstGlyph()
		attGlyph, _, okAtt = attachment.FirstGlyph()
	}
	if !okNuc || !okAtt {
		return 0
	}

	var baseCorrectionHeight, attachCorrectionHeight layout.Abs
	switch corner {
	case mathshape.TopLeft, mathshape.TopRight:
		baseCorrectionHeight = shift - attachment.Descent()
		attachCorrectionHeight = nucleus.Ascent() - shift
	default: // BottomLeft, BottomRight
		baseCorrectionHeight = -shift + attachment.Ascent()
		attachCorrectionHeight = shift - nucleus.Descent()
	}

	return shaper.MathKern(nucGlyph, corner, baseCorrectionHeight) +
		shaper.MathKern(attGlyph, corner.DiagonalMirror(), attachCorrectionHeight)
}

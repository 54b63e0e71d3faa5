package mbox

import "github.com/typeset/mathlayout/layout"

// Extents is a box's horizontal and vertical footprint. Height is derived,
// never stored independently, so it can never disagree with its parts.
type Extents struct {
	Width, Ascent, Descent layout.Abs
}

// Height returns ascent+descent.
func (e Extents) Height() layout.Abs {
	return e.Ascent + e.Descent
}

// Bounds pairs an origin with extents, the shape returned by
// Shaper.GlyphBounds.
type Bounds struct {
	Origin  layout.Point
	Extents Extents
}

// Normalize adjusts the bounds so ascent and descent are both
// non-negative, shifting the origin to compensate — needed when an ink
// bounding box pokes above the nominal ascent line or below the descent
// line (e.g. a superscript-heavy glyph). Invariant 2 of the testable
// properties requires this after normalization.
func (b Bounds) Normalize() Bounds {
	e := b.Extents
	if e.Ascent < 0 {
		shift := -e.Ascent
		b.Origin.Y += shift
		e.Descent -= shift
		e.Ascent = 0
	}
	if e.Descent < 0 {
		shift := -e.Descent
		e.Ascent -= shift
		e.Descent = 0
		b.Origin.Y -= shift
	}
	b.Extents = e
	return b
}

// ContentKind tags the closed set of box content variants.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentGlyph
	ContentLine
	ContentBoxes
)

// GlyphSource supplies the metrics a Glyph content needs to compute its
// lazily-cached extents. It is satisfied structurally by any shaper
// implementation (mathshape.Shaper matches it) without mbox importing
// that package, keeping the dependency direction shaper-depends-on-box
// rather than the reverse.
type GlyphSource interface {
	GlyphAdvance(glyph uint16) layout.Abs
	GlyphExtents(glyph uint16) (ascent, descent layout.Abs)
	ItalicCorrection(glyph uint16) layout.Abs
	TopAccentAttachment(glyph uint16) layout.Abs
}

// Content is the closed set of things a MathBox can contain.
type Content struct {
	Kind ContentKind

	// ContentGlyph
	GlyphID    uint16
	GlyphScale layout.PercentScale // 100 = no scaling
	Source     GlyphSource

	// ContentLine
	LineVector    layout.Point
	LineThickness layout.Abs

	// ContentBoxes
	Boxes []*MathBox
}

// EmptyContent is the zero-footprint content variant.
func EmptyContent() Content { return Content{Kind: ContentEmpty} }

// GlyphContent wraps a single shaped glyph.
func GlyphContent(id uint16, scale layout.PercentScale, source GlyphSource) Content {
	if scale == 0 {
		scale = 100
	}
	return Content{Kind: ContentGlyph, GlyphID: id, GlyphScale: scale, Source: source}
}

// LineContent describes a drawn rule (fraction bars, radical rules,
// over/underlines): a vector from the box's origin and a stroke thickness.
func LineContent(vector layout.Point, thickness layout.Abs) Content {
	return Content{Kind: ContentLine, LineVector: vector, LineThickness: thickness}
}

// BoxesContent wraps an ordered list of positioned child boxes. Each
// child's Origin is relative to this box's own coordinate frame.
func BoxesContent(children []*MathBox) Content {
	return Content{Kind: ContentBoxes, Boxes: children}
}

// MathBox is a node of the output tree. Origin is this box's position
// relative to its parent's coordinate frame (zero for a freestanding root).
// Width/Ascent/Descent/ItalicCorrection/TopAccentAttachment are computed on
// first read and memoized; the laziness is an optimization, not a
// contract, so callers must never observe a box before all of its content
// is final.
type MathBox struct {
	Origin layout.Point

	content Content

	widthComputed, ascentComputed, descentComputed bool
	width, ascent, descent                         layout.Abs

	italicComputed bool
	italic         layout.Abs

	topAccentComputed bool
	topAccent         layout.Abs
}

// NewMathBox constructs a box from content, with a zero origin. Callers
// set Origin when placing it inside a parent's Boxes content.
func NewMathBox(content Content) *MathBox {
	return &MathBox{content: content}
}

// NewSizedEmptyBox constructs an Empty-content box carrying explicit
// extents, for spacer items whose footprint is specified directly rather
// than derived from glyph or child content.
func NewSizedEmptyBox(extents Extents) *MathBox {
	b := &MathBox{content: Content{Kind: ContentEmpty}}
	b.width, b.widthComputed = extents.Width, true
	b.ascent, b.ascentComputed = extents.Ascent, true
	b.descent, b.descentComputed = extents.Descent, true
	return b
}

// Content returns the box's content variant.
func (b *MathBox) Content() Content {
	return b.content
}

// Width returns the box's logical (advance) width.
func (b *MathBox) Width() layout.Abs {
	if !b.widthComputed {
		b.width = b.computeWidth()
		b.widthComputed = true
	}
	return b.width
}

// Ascent returns the box's ascent (positive distance above the baseline).
func (b *MathBox) Ascent() layout.Abs {
	if !b.ascentComputed {
		b.ascent = b.computeAscent()
		b.ascentComputed = true
	}
	return b.ascent
}

// Descent returns the box's descent (positive distance below the baseline).
func (b *MathBox) Descent() layout.Abs {
	if !b.descentComputed {
		b.descent = b.computeDescent()
		b.descentComputed = true
	}
	return b.descent
}

// Height returns Ascent()+Descent().
func (b *MathBox) Height() layout.Abs {
	return b.Ascent() + b.Descent()
}

// ItalicCorrection returns the box's italic correction: for a glyph, the
// shaper's value; for a composite, the last child's.
func (b *MathBox) ItalicCorrection() layout.Abs {
	if !b.italicComputed {
		b.italic = b.computeItalicCorrection()
		b.italicComputed = true
	}
	return b.italic
}

// TopAccentAttachment returns the horizontal anchor used to center an
// accent over this box: for a glyph, the shaper's value (or width/2 if the
// shaper reports zero); for a composite with exactly one child, that
// child's; otherwise width/2.
func (b *MathBox) TopAccentAttachment() layout.Abs {
	if !b.topAccentComputed {
		b.topAccent = b.computeTopAccentAttachment()
		b.topAccentComputed = true
	}
	return b.topAccent
}

func (b *MathBox) computeWidth() layout.Abs {
	switch b.content.Kind {
	case ContentEmpty:
		return 0
	case ContentGlyph:
		adv := b.content.Source.GlyphAdvance(b.content.GlyphID)
		return scalePercent(adv, b.content.GlyphScale)
	case ContentLine:
		return absVal(b.content.LineVector.X)
	case ContentBoxes:
		var max layout.Abs
		for _, c := range b.content.Boxes {
			w := c.Origin.X + c.Width()
			if w > max {
				max = w
			}
		}
		return max
	default:
		return 0
	}
}

func (b *MathBox) computeAscent() layout.Abs {
	switch b.content.Kind {
	case ContentEmpty:
		return 0
	case ContentGlyph:
		asc, _ := b.content.Source.GlyphExtents(b.content.GlyphID)
		return scalePercent(asc, b.content.GlyphScale)
	case ContentLine:
		if b.content.LineVector.Y < 0 {
			return -b.content.LineVector.Y
		}
		return 0
	case ContentBoxes:
		var max layout.Abs
		for _, c := range b.content.Boxes {
			a := -c.Origin.Y + c.Ascent()
			if a > max {
				max = a
			}
		}
		return max
	default:
		return 0
	}
}

func (b *MathBox) computeDescent() layout.Abs {
	switch b.content.Kind {
	case ContentEmpty:
		return 0
	case ContentGlyph:
		_, desc := b.content.Source.GlyphExtents(b.content.GlyphID)
		return scalePercent(desc, b.content.GlyphScale)
	case ContentLine:
		if b.content.LineVector.Y > 0 {
			return b.content.LineVector.Y
		}
		return 0
	case ContentBoxes:
		var max layout.Abs
		for _, c := range b.content.Boxes {
			d := c.Origin.Y + c.Descent()
			if d > max {
				max = d
			}
		}
		return max
	default:
		return 0
	}
}

func (b *MathBox) computeItalicCorrection() layout.Abs {
	switch b.content.Kind {
	case ContentGlyph:
		return scalePercent(b.content.Source.ItalicCorrection(b.content.GlyphID), b.content.GlyphScale)
	case ContentBoxes:
		if len(b.content.Boxes) == 0 {
			return 0
		}
		return b.content.Boxes[len(b.content.Boxes)-1].ItalicCorrection()
	default:
		return 0
	}
}

func (b *MathBox) computeTopAccentAttachment() layout.Abs {
	switch b.content.Kind {
	case ContentGlyph:
		v := scalePercent(b.content.Source.TopAccentAttachment(b.content.GlyphID), b.content.GlyphScale)
		if v == 0 {
			return b.Width() / 2
		}
		return v
	case ContentBoxes:
		if len(b.content.Boxes) == 1 {
			return b.content.Boxes[0].Origin.X + b.content.Boxes[0].TopAccentAttachment()
		}
		return b.Width() / 2
	default:
		return b.Width() / 2
	}
}

// FirstGlyph walks into Boxes content to find the first leaf glyph, used by
// attachment kerning to key the kern table on a concrete glyph id.
func (b *MathBox) FirstGlyph() (uint16, GlyphSource, bool) {
	switch b.content.Kind {
	case ContentGlyph:
		return b.content.GlyphID, b.content.Source, true
	case ContentBoxes:
		for _, c := range b.content.Boxes {
			if id, src, ok := c.FirstGlyph(); ok {
				return id, src, true
			}
		}
	}
	return 0, nil, false
}

// LastGlyph walks into Boxes content to find the last glyph.
func (b *MathBox) LastGlyph() (uint16, GlyphSource, bool) {
	switch b.content.Kind {
	case ContentGlyph:
		return b.content.GlyphID, b.content.Source, true
	case ContentBoxes:
		for i := len(b.content.Boxes) - 1; i >= 0; i-- {
			if id, src, ok := b.content.Boxes[i].LastGlyph(); ok {
				return id, src, true
			}
		}
	}
	return 0, nil, false
}

func scalePercent(a layout.Abs, p layout.PercentScale) layout.Abs {
	if p == 0 || p == 100 {
		return a
	}
	return p.Apply(a)
}

func absVal(a layout.Abs) layout.Abs {
	return a.Abs()
}

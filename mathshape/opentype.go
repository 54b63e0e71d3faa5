package mathshape

import (
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mbox"
)

// OpenTypeShaper implements Shaper against a real OpenType font carrying a
// MATH table, via go-text/typesetting for glyph metrics and text shaping
// and a MathTable adapter for the MATH-table-specific numbers.
type OpenTypeShaper struct {
	face  *gofont.Face
	math  MathTable
	upem  int32
	guard *shapingGuard

	shaperEngine *shaping.HarfbuzzShaper
}

// NewOpenTypeShaper builds a shaper around an already-loaded face and its
// adapted MATH table.
func NewOpenTypeShaper(face *gofont.Face, math MathTable) *OpenTypeShaper {
	upem := int32(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	return &OpenTypeShaper{
		face:         face,
		math:         math,
		upem:         upem,
		guard:        newShapingGuard("OpenTypeShaper"),
		shaperEngine: &shaping.HarfbuzzShaper{},
	}
}

// EmSize returns the font's units-per-em.
func (s *OpenTypeShaper) EmSize() int32 {
	return s.upem
}

// MathConstant resolves a MATH constant to font design units, or zero if
// the table lacks it, rather than surfacing an error.
func (s *OpenTypeShaper) MathConstant(kind MathConstant) layout.Abs {
	if s.math == nil {
		return 0
	}
	v, ok := s.math.Constant(kind)
	if !ok {
		return 0
	}
	return layout.Abs(v)
}

func (s *OpenTypeShaper) gid(glyph uint16) gofont.GID {
	return gofont.GID(glyph)
}

// GlyphAdvance returns a glyph's horizontal advance in font design units.
func (s *OpenTypeShaper) GlyphAdvance(glyph uint16) layout.Abs {
	return layout.Abs(s.face.HorizontalAdvance(s.gid(glyph)))
}

// GlyphExtents returns a glyph's ink ascent/descent from its outline bbox.
func (s *OpenTypeShaper) GlyphExtents(glyph uint16) (ascent, descent layout.Abs) {
	b := s.GlyphBounds(glyph)
	return b.Extents.Ascent, b.Extents.Descent
}

// GlyphBounds returns a glyph's ink bounding box including left side
// bearing, via the font's outline extents.
func (s *OpenTypeShaper) GlyphBounds(glyph uint16) mbox.Bounds {
	ext, ok := s.face.GlyphExtents(s.gid(glyph))
	if !ok {
		return mbox.Bounds{}
	}
	b := mbox.Bounds{
		Origin: layout.Point{X: layout.Abs(ext.XBearing), Y: layout.Abs(-ext.YBearing)},
		Extents: mbox.Extents{
			Width:   layout.Abs(ext.Width),
			Ascent:  layout.Abs(ext.YBearing),
			Descent: layout.Abs(-(ext.YBearing + ext.Height)),
		},
	}
	return b.Normalize()
}

// ItalicCorrection returns the MathItalicsCorrectionInfo value for a glyph.
func (s *OpenTypeShaper) ItalicCorrection(glyph uint16) layout.Abs {
	if s.math == nil {
		return 0
	}
	v, ok := s.math.ItalicCorrection(glyph)
	if !ok {
		return 0
	}
	return layout.Abs(v)
}

// TopAccentAttachment returns the MathTopAccentAttachment value for a
// glyph, 0 if absent (callers fall back to width/2).
func (s *OpenTypeShaper) TopAccentAttachment(glyph uint16) layout.Abs {
	if s.math == nil {
		return 0
	}
	v, ok := s.math.TopAccentAttachment(glyph)
	if !ok {
		return 0
	}
	return layout.Abs(v)
}

// MathKern evaluates a glyph's per-corner kern curve.
func (s *OpenTypeShaper) MathKern(glyph uint16, corner CornerPosition, correctionHeight layout.Abs) layout.Abs {
	if s.math == nil {
		return 0
	}
	v, ok := s.math.Kern(glyph, corner, int32(correctionHeight))
	if !ok {
		return 0
	}
	return layout.Abs(v)
}

// scaleFactorFor returns the script-scale-down percentage for the style's
// script level.
func (s *OpenTypeShaper) scaleFactorFor(style mathexpr.LayoutStyle) layout.PercentScale {
	switch style.ScaleTier() {
	case mathexpr.ScaleScript:
		if s.math == nil {
			return 70
		}
		v, ok := s.math.Constant(ScriptPercentScaleDown)
		if !ok {
			return 70
		}
		return layout.PercentScale(v)
	case mathexpr.ScaleScriptScript:
		if s.math == nil {
			return 50
		}
		v, ok := s.math.Constant(ScriptScriptPercentScaleDown)
		if !ok {
			return 50
		}
		return layout.PercentScale(v)
	default:
		return 100
	}
}

// ShapeString shapes a run of text at the scale implied by style's script
// level, returning one glyph box per shaped glyph in advance order.
func (s *OpenTypeShaper) ShapeString(text string, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	scale := s.scaleFactorFor(style)

	input := shaping.Input{
		Text:      []rune(text),
		RunStart:  0,
		RunEnd:    len([]rune(text)),
		Direction: 0, // left-to-right
		Face:      s.face,
		Size:      fixedFromEm(1),
		Script:    language.Math,
	}
	out, err := s.shaperEngine.Shape(input)
	if err != nil {
		return emptyGlyphFallback(text, scale, s), nil
	}

	boxes := make([]*mbox.MathBox, 0, len(out.Glyphs))
	var pen layout.Abs
	for _, g := range out.Glyphs {
		b := mbox.NewMathBox(mbox.GlyphContent(uint16(g.GlyphID), scale, s))
		b.Origin = layout.Point{X: pen}
		boxes = append(boxes, b)
		pen += b.Width()
	}
	return boxes, nil
}

// ShapeStretchy shapes a stretchy operator to at least targetSize,
// selecting the smallest adequate precomposed variant or, failing that,
// synthesizing a glyph assembly from the MATH table's construction
// records.
func (s *OpenTypeShaper) ShapeStretchy(text string, horizontal bool, targetSize layout.Abs, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	runes := []rune(text)
	if len(runes) != 1 || s.math == nil {
		return s.fallbackShapeLocked(text, style)
	}
	base, ok := s.face.NominalGlyph(runes[0])
	if !ok {
		return s.fallbackShapeLocked(text, style)
	}

	variants, hasAssembly := s.math.Variants(uint16(base), horizontal)
	for _, v := range variants {
		if layout.Abs(v.AdvanceMeasure) >= targetSize {
			b := mbox.NewMathBox(mbox.GlyphContent(v.Glyph, 100, s))
			return []*mbox.MathBox{b}, nil
		}
	}
	if !hasAssembly {
		if len(variants) > 0 {
			last := variants[len(variants)-1]
			b := mbox.NewMathBox(mbox.GlyphContent(last.Glyph, 100, s))
			return []*mbox.MathBox{b}, nil
		}
		b := mbox.NewMathBox(mbox.GlyphContent(uint16(base), 100, s))
		return []*mbox.MathBox{b}, nil
	}

	parts, _ := s.math.Assembly(uint16(base), horizontal)
	return s.assembleParts(parts, targetSize, horizontal), nil
}

// assembleParts lays out a glyph-construction recipe end to end, repeating
// extender parts until the combined measure meets targetSize.
func (s *OpenTypeShaper) assembleParts(parts []AssemblyPart, targetSize layout.Abs, horizontal bool) []*mbox.MathBox {
	overlap := layout.Abs(s.math.MinConnectorOverlap())

	nonExtenders := layout.Abs(0)
	var extender *AssemblyPart
	for i := range parts {
		p := &parts[i]
		if p.IsExtender {
			extender = p
			continue
		}
		nonExtenders += layout.Abs(p.FullAdvance) - overlap
	}
	nonExtenders += overlap

	reps := 0
	if extender != nil {
		extAdvance := layout.Abs(extender.FullAdvance) - overlap
		if extAdvance > 0 {
			for nonExtenders+layout.Abs(reps)*extAdvance < targetSize {
				reps++
			}
		}
	}

	boxes := make([]*mbox.MathBox, 0, len(parts)+reps)
	var pen layout.Abs
	place := func(glyph uint16, advance layout.Abs) {
		b := mbox.NewMathBox(mbox.GlyphContent(glyph, 100, s))
		if horizontal {
			b.Origin = layout.Point{X: pen}
		} else {
			b.Origin = layout.Point{Y: pen}
		}
		boxes = append(boxes, b)
		pen += advance - overlap
	}
	for i := range parts {
		p := &parts[i]
		if p.IsExtender {
			continue
		}
		place(p.Glyph, layout.Abs(p.FullAdvance))
	}
	if extender != nil {
		for i := 0; i < reps; i++ {
			place(extender.Glyph, layout.Abs(extender.FullAdvance))
		}
	}
	return boxes
}

// fallbackShapeLocked is used when a stretchy base can't be resolved to a
// glyph at all; shaping failures surface as empty boxes rather than errors.
func (s *OpenTypeShaper) fallbackShapeLocked(text string, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error) {
	return []*mbox.MathBox{mbox.NewMathBox(mbox.EmptyContent())}, nil
}

func emptyGlyphFallback(text string, scale layout.PercentScale, s *OpenTypeShaper) []*mbox.MathBox {
	return []*mbox.MathBox{mbox.NewMathBox(mbox.EmptyContent())}
}

// fixedFromEm converts an em-relative size to the fixed-point representation
// go-text/typesetting's shaping.Input expects for font size.
func fixedFromEm(em float64) int {
	const fixedScale = 1 << 6
	return int(em * fixedScale * 1000)
}

package mathshape

import (
	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mbox"
)

// GlyphMetric is a test fixture's per-glyph metric set.
type GlyphMetric struct {
	Advance             layout.Abs
	Ascent, Descent     layout.Abs
	ItalicCorrection    layout.Abs
	TopAccentAttachment layout.Abs
}

// StubShaper is a deterministic, in-memory Shaper for tests: glyph metrics
// and MATH constants are supplied directly rather than parsed from a real
// font, and ShapeString/ShapeStretchy assign one synthetic glyph per
// rune/target rather than invoking a real shaping engine.
type StubShaper struct {
	Upem      int32
	Constants map[MathConstant]layout.Abs
	Glyphs    map[rune]GlyphMetric
	Default   GlyphMetric

	guard *shapingGuard
	kerns map[kernKey]layout.Abs
}

type kernKey struct {
	glyph  uint16
	corner CornerPosition
}

// NewStubShaper builds a stub with representative defaults for every MATH
// constant layout consults, so tests only need to override the handful
// relevant to the behavior under test.
func NewStubShaper() *StubShaper {
	return &StubShaper{
		Upem: 1000,
		Constants: map[MathConstant]layout.Abs{
			ScriptPercentScaleDown:            70,
			ScriptScriptPercentScaleDown:      50,
			AxisHeight:                        250,
			AccentBaseHeight:                  527,
			FlattenedAccentBaseHeight:         686,
			SubscriptShiftDown:                150,
			SubscriptTopMax:                   400,
			SubscriptBaselineDropMin:          50,
			SuperscriptShiftUp:                363,
			SuperscriptShiftUpCramped:         289,
			SuperscriptBottomMin:              108,
			SuperscriptBaselineDropMax:        271,
			SubSuperscriptGapMin:              160,
			SuperscriptBottomMaxWithSubscript: 380,
			SpaceAfterScript:                  41,
			StackTopShiftUp:                   444,
			StackTopDisplayStyleShiftUp:        678,
			StackBottomShiftDown:               486,
			StackBottomDisplayStyleShiftDown:   686,
			StackGapMin:                        150,
			StackDisplayStyleGapMin:            300,
			FractionNumeratorShiftUp:           677,
			FractionNumeratorDisplayStyleShiftUp: 677,
			FractionDenominatorShiftDown:         394,
			FractionDenominatorDisplayStyleShiftDown: 686,
			FractionNumeratorGapMin:                   40,
			FractionNumDisplayStyleGapMin:              150,
			FractionRuleThickness:                      40,
			FractionDenominatorGapMin:                  40,
			FractionDenomDisplayStyleGapMin:             150,
			OverbarVerticalGap:                          71,
			OverbarRuleThickness:                        40,
			OverbarExtraAscender:                        40,
			UnderbarVerticalGap:                          71,
			UnderbarRuleThickness:                        40,
			UnderbarExtraDescender:                       40,
			RadicalVerticalGap:                           60,
			RadicalDisplayStyleVerticalGap:                100,
			RadicalRuleThickness:                          40,
			RadicalExtraAscender:                          40,
			RadicalKernBeforeDegree:                       83,
			RadicalKernAfterDegree:                        -83,
			RadicalDegreeBottomRaisePercent:               60,
			DisplayOperatorMinHeight:                      600,
			MinConnectorOverlap:                           20,
		},
		Glyphs: make(map[rune]GlyphMetric),
		Default: GlyphMetric{
			Advance: 500, Ascent: 450, Descent: 10,
		},
		guard: newShapingGuard("StubShaper"),
		kerns: make(map[kernKey]layout.Abs),
	}
}

// SetGlyph registers explicit metrics for a rune.
func (s *StubShaper) SetGlyph(r rune, m GlyphMetric) {
	s.Glyphs[r] = m
}

// SetKern registers an explicit math-kern value for a glyph/corner pair,
// applied regardless of the requested correction height (sufficient for
// deterministic tests).
func (s *StubShaper) SetKern(glyph uint16, corner CornerPosition, v layout.Abs) {
	s.kerns[kernKey{glyph, corner}] = v
}

func (s *StubShaper) metricFor(glyph uint16) GlyphMetric {
	if m, ok := s.Glyphs[rune(glyph)]; ok {
		return m
	}
	return s.Default
}

func (s *StubShaper) EmSize() int32 { return s.Upem }

func (s *StubShaper) MathConstant(kind MathConstant) layout.Abs {
	return s.Constants[kind]
}

func (s *StubShaper) GlyphAdvance(glyph uint16) layout.Abs {
	return s.metricFor(glyph).Advance
}

func (s *StubShaper) GlyphExtents(glyph uint16) (ascent, descent layout.Abs) {
	m := s.metricFor(glyph)
	return m.Ascent, m.Descent
}

func (s *StubShaper) GlyphBounds(glyph uint16) mbox.Bounds {
	m := s.metricFor(glyph)
	return mbox.Bounds{Extents: mbox.Extents{Width: m.Advance, Ascent: m.Ascent, Descent: m.Descent}}
}

func (s *StubShaper) ItalicCorrection(glyph uint16) layout.Abs {
	return s.metricFor(glyph).ItalicCorrection
}

func (s *StubShaper) TopAccentAttachment(glyph uint16) layout.Abs {
	return s.metricFor(glyph).TopAccentAttachment
}

func (s *StubShaper) MathKern(glyph uint16, corner CornerPosition, _ layout.Abs) layout.Abs {
	return s.kerns[kernKey{glyph, corner}]
}

func (s *StubShaper) scaleFor(style mathexpr.LayoutStyle) layout.PercentScale {
	switch style.ScaleTier() {
	case mathexpr.ScaleScript:
		return layout.PercentScale(s.Constants[ScriptPercentScaleDown])
	case mathexpr.ScaleScriptScript:
		return layout.PercentScale(s.Constants[ScriptScriptPercentScaleDown])
	default:
		return 100
	}
}

// ShapeString assigns one synthetic glyph (the rune's own code point, cast
// to uint16) per character, laid left to right at the style's scale.
func (s *StubShaper) ShapeString(text string, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	scale := s.scaleFor(style)
	var pen layout.Abs
	boxes := make([]*mbox.MathBox, 0, len(text))
	for _, r := range text {
		b := mbox.NewMathBox(mbox.GlyphContent(uint16(r), scale, s))
		b.Origin = layout.Point{X: pen}
		boxes = append(boxes, b)
		pen += b.Width()
	}
	return boxes, nil
}

// ShapeStretchy returns a single synthetic glyph sized to exactly
// targetSize along the requested axis — sufficient for deterministic
// assertions in tests without modeling real variant selection.
func (s *StubShaper) ShapeStretchy(text string, horizontal bool, targetSize layout.Abs, style mathexpr.LayoutStyle) ([]*mbox.MathBox, error) {
	if err := s.guard.Enter(); err != nil {
		return nil, err
	}
	defer s.guard.Exit()

	runes := []rune(text)
	var r rune
	if len(runes) > 0 {
		r = runes[0]
	}
	m := s.metricFor(uint16(r))
	if horizontal {
		m.Advance = targetSize
	} else {
		half := targetSize / 2
		m.Ascent, m.Descent = half, targetSize-half
	}
	s.Glyphs[r] = m
	b := mbox.NewMathBox(mbox.GlyphContent(uint16(r), 100, s))
	return []*mbox.MathBox{b}, nil
}

var _ Shaper = (*StubShaper)(nil)

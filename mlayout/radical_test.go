package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
)

func TestLayoutRootWithoutDegree(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	const radicandGlyph uint16 = 'R'
	shaper.SetGlyph(radicandGlyph, mathshape.GlyphMetric{Advance: 200, Ascent: 300, Descent: 100})

	radicand := mathexpr.NewField(mathexpr.GlyphField(radicandGlyph, 0))
	e := mathexpr.NewRoot(radicand, nil)

	box := layoutRoot(e, shaper, mathexpr.DisplayStyle())
	children := box.Content().Boxes
	if len(children) != 4 { // surd, rule, radicand, ascent marker
		t.Fatalf("expected 4 parts (surd, rule, radicand, ascent marker), got %d", len(children))
	}
	surd, rule, radicandBox := children[0], children[1], children[2]

	if surd.Origin.X != 0 {
		t.Errorf("surd should sit at X=0 with no degree, got %v", surd.Origin.X)
	}
	if radicandBox.Origin.X != surd.Width() {
		t.Errorf("radicand should start right after the surd, got X=%v want %v", radicandBox.Origin.X, surd.Width())
	}
	if rule.Origin.X != radicandBox.Origin.X {
		t.Errorf("the rule should align with the radicand horizontally, got %v want %v", rule.Origin.X, radicandBox.Origin.X)
	}

	extra := shaper.MathConstant(mathshape.RadicalExtraAscender)
	surdAscent := radicandBox.Ascent() + shaper.MathConstant(mathshape.RadicalDisplayStyleVerticalGap) + shaper.MathConstant(mathshape.RadicalRuleThickness)
	if box.Ascent() != surdAscent+extra {
		t.Errorf("root ascent = %v, want surd ascent %v plus extra ascender %v", box.Ascent(), surdAscent, extra)
	}
}

func TestLayoutRootDisplayStyleUsesWiderGap(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	const radicandGlyph uint16 = 'R'
	shaper.SetGlyph(radicandGlyph, mathshape.GlyphMetric{Advance: 200, Ascent: 300, Descent: 100})
	radicand := mathexpr.NewField(mathexpr.GlyphField(radicandGlyph, 0))
	e := mathexpr.NewRoot(radicand, nil)

	display := layoutRoot(e, shaper, mathexpr.DisplayStyle())
	inlineStyle := mathexpr.DisplayStyle()
	inlineStyle.MathStyle = mathexpr.Inline
	inline := layoutRoot(e, shaper, inlineStyle)

	if display.Ascent() == inline.Ascent() {
		t.Error("display-style and inline-style radicals should use different vertical gaps and thus different ascents")
	}
}

func TestLayoutRootWithDegreeShiftsEverythingRight(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	const radicandGlyph uint16 = 'R'
	shaper.SetGlyph(radicandGlyph, mathshape.GlyphMetric{Advance: 200, Ascent: 300, Descent: 100})
	radicand := mathexpr.NewField(mathexpr.GlyphField(radicandGlyph, 0))
	degree := mathexpr.NewField(mathexpr.UnicodeField("g"))
	e := mathexpr.NewRoot(radicand, degree)

	box := layoutRoot(e, shaper, mathexpr.DisplayStyle())
	children := box.Content().Boxes
	if len(children) != 5 { // surd, rule, radicand, degree, ascent marker
		t.Fatalf("expected 5 parts with a degree present, got %d", len(children))
	}
	surd, _, radicandBox, degreeBox := children[0], children[1], children[2], children[3]

	kernBefore := shaper.MathConstant(mathshape.RadicalKernBeforeDegree)
	if degreeBox.Origin.X != kernBefore {
		t.Errorf("degree X = %v, want kern-before-degree %v", degreeBox.Origin.X, kernBefore)
	}
	if surd.Origin.X <= 0 {
		t.Errorf("the surd should be pushed right to make room for the degree, got %v", surd.Origin.X)
	}
	if radicandBox.Origin.X != surd.Origin.X+surd.Width() {
		t.Errorf("radicand should immediately follow the surd, got %v want %v", radicandBox.Origin.X, surd.Origin.X+surd.Width())
	}
}

func TestLayoutRootNoExtraAscenderWhenZero(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	shaper.Constants[mathshape.RadicalExtraAscender] = 0
	const radicandGlyph uint16 = 'R'
	shaper.SetGlyph(radicandGlyph, mathshape.GlyphMetric{Advance: 200, Ascent: 300, Descent: 100})
	radicand := mathexpr.NewField(mathexpr.GlyphField(radicandGlyph, 0))
	e := mathexpr.NewRoot(radicand, nil)

	box := layoutRoot(e, shaper, mathexpr.DisplayStyle())
	if len(box.Content().Boxes) != 3 {
		t.Errorf("with a zero extra ascender, no marker box should be appended, got %d children", len(box.Content().Boxes))
	}
}

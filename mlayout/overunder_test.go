package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
	"github.com/typeset/mathlayout/mbox"
)

func newOverUnderShaper() *mathshape.StubShaper {
	s := mathshape.NewStubShaper()
	s.SetGlyph('N', mathshape.GlyphMetric{Advance: 300, Ascent: 200, Descent: 50})
	s.SetGlyph('O', mathshape.GlyphMetric{Advance: 100, Ascent: 80, Descent: 20})
	s.SetGlyph('U', mathshape.GlyphMetric{Advance: 120, Ascent: 30, Descent: 90})
	return s
}

func TestLayoutOverUnderNoAttachmentsReturnsNucleus(t *testing.T) {
	shaper := newOverUnderShaper()
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	e := mathexpr.NewOverUnder(nucleus, nil, nil, false, false)
	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	if got.Width() != 300 || got.Ascent() != 200 || got.Descent() != 50 {
		t.Errorf("expected the bare nucleus extents, got %v/%v/%v", got.Width(), got.Ascent(), got.Descent())
	}
}

func TestLayoutOverUnderNonAccentOver(t *testing.T) {
	shaper := newOverUnderShaper()
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	over := mathexpr.NewField(mathexpr.GlyphField('O', 0))
	e := mathexpr.NewOverUnder(nucleus, over, nil, false, false)

	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	if got.Width() != 300 {
		t.Errorf("width = %v, want 300 (nucleus dominates)", got.Width())
	}
	wantAscent := layout.Abs(200 + 71 + 20 + 80 + 40) // nucleus ascent + gap + over descent + over ascent + extra ascender
	if got.Ascent() != wantAscent {
		t.Errorf("ascent = %v, want %v", got.Ascent(), wantAscent)
	}
	if got.Descent() != 50 {
		t.Errorf("descent = %v, want 50 (nucleus unaffected by an over attachment)", got.Descent())
	}
}

func TestLayoutOverUnderAccentAlignsTopAccentAttachment(t *testing.T) {
	shaper := newOverUnderShaper()
	shaper.SetGlyph('O', mathshape.GlyphMetric{Advance: 100, Ascent: 80, Descent: 20, TopAccentAttachment: 70})
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	over := mathexpr.NewField(mathexpr.GlyphField('O', 0))
	e := mathexpr.NewOverUnder(nucleus, over, nil, true, false)

	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	overBox := got.Content().Boxes[0]
	// nucleus TopAccentAttachment falls back to width/2 = 150 when unset.
	wantOverX := layout.Abs(150 - 70)
	if overBox.Origin.X != wantOverX {
		t.Errorf("accent over-box X = %v, want %v", overBox.Origin.X, wantOverX)
	}
	// accentBaseHeight(527) > nucleus ascent(200), so the gap collapses the
	// over box toward the accent base height.
	wantAscent := layout.Abs(527 + 20 + 80 + 40)
	if got.Ascent() != wantAscent {
		t.Errorf("ascent = %v, want %v", got.Ascent(), wantAscent)
	}
}

func TestLayoutOverUnderUnder(t *testing.T) {
	shaper := newOverUnderShaper()
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	under := mathexpr.NewField(mathexpr.GlyphField('U', 0))
	e := mathexpr.NewOverUnder(nucleus, nil, under, false, false)

	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	if got.Ascent() != 200 {
		t.Errorf("ascent = %v, want 200 (nucleus unaffected by an under attachment)", got.Ascent())
	}
	wantDescent := layout.Abs(50 + 71 + 30 + 90 + 40) // nucleus descent + gap + under ascent + under descent + extra descender
	if got.Descent() != wantDescent {
		t.Errorf("descent = %v, want %v", got.Descent(), wantDescent)
	}
}

func TestLayoutOverUnderMovableLimitsFlattenInInlineStyle(t *testing.T) {
	shaper := newOverUnderShaper()
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	over := mathexpr.NewField(mathexpr.GlyphField('O', 0))
	e := &mathexpr.Expr{Kind: mathexpr.KindOverUnder, Nucleus: nucleus, Over: over, IsLimits: true}

	style := mathexpr.DisplayStyle()
	style.MathStyle = mathexpr.Inline
	got := layoutOverUnder(e, shaper, style)

	equivalentAtom := &mathexpr.Expr{Kind: mathexpr.KindAtom, Nucleus: nucleus, TopRight: over}
	want := layoutAtom(equivalentAtom, shaper, style)

	if got.Width() != want.Width() || got.Ascent() != want.Ascent() || got.Descent() != want.Descent() {
		t.Errorf("movable-limits in inline style should flatten to an ordinary superscript atom; got %v/%v/%v want %v/%v/%v",
			got.Width(), got.Ascent(), got.Descent(), want.Width(), want.Ascent(), want.Descent())
	}
}

func TestLayoutOverUnderMovableLimitsKeepStackingInDisplayStyle(t *testing.T) {
	shaper := newOverUnderShaper()
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	over := mathexpr.NewField(mathexpr.GlyphField('O', 0))
	e := &mathexpr.Expr{Kind: mathexpr.KindOverUnder, Nucleus: nucleus, Over: over, IsLimits: true}

	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	wantAscent := layout.Abs(200 + 71 + 20 + 80 + 40)
	if got.Ascent() != wantAscent {
		t.Errorf("display-style movable limits should stack as over/under, ascent = %v want %v", got.Ascent(), wantAscent)
	}
}

func TestLayoutOverUnderStretchyAccentStretchesToNucleusWidth(t *testing.T) {
	shaper := newOverUnderShaper()
	shaper.SetGlyph('N', mathshape.GlyphMetric{Advance: 900, Ascent: 200, Descent: 50})
	nucleus := mathexpr.NewField(mathexpr.GlyphField('N', 0))
	// Modeled on the vector arrow accent: a postfix stretchy accent operator,
	// the construct opdict.Lookup(0x2192, opdict.Postfix) prices as
	// Accent|Stretchy.
	rightArrow := mathexpr.NewOperator(mathexpr.GlyphField('O', 0), layout.Length{}, layout.Length{}, 0, &mathexpr.StretchConstraints{}, false)
	e := mathexpr.NewOverUnder(nucleus, rightArrow, nil, true, false)

	got := layoutOverUnder(e, shaper, mathexpr.DisplayStyle())
	overBox := got.Content().Boxes[0]
	if overBox.Width() != 900 {
		t.Errorf("stretchy over-accent width = %v, want 900 (stretched to the nucleus's own width)", overBox.Width())
	}
}

func TestCenterRel(t *testing.T) {
	cases := []struct{ a, b, want layout.Abs }{
		{10, 4, 3},
		{4, 10, -3},
		{5, 5, 0},
	}
	for _, c := range cases {
		if got := centerRel(c.a, c.b); got != c.want {
			t.Errorf("centerRel(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestWrapWithExtentsForcesExactFootprint(t *testing.T) {
	shaper := newOverUnderShaper()
	inner := layoutExpr(mathexpr.NewField(mathexpr.GlyphField('N', 0)), shaper, mathexpr.DisplayStyle())
	got := wrapWithExtents([]*mbox.MathBox{inner}, 900, 500, 300)
	if got.Width() != 900 {
		t.Errorf("forced width = %v, want 900", got.Width())
	}
	if got.Ascent() != 500 {
		t.Errorf("forced ascent = %v, want 500", got.Ascent())
	}
	if got.Descent() != 300 {
		t.Errorf("forced descent = %v, want 300", got.Descent())
	}
}

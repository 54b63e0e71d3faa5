package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
)

func TestLayoutFractionCentersNarrowerPart(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	num := mathexpr.NewField(mathexpr.UnicodeField("n")) // one default-metric glyph, width 500
	denom := mathexpr.NewField(mathexpr.UnicodeField("dd")) // two glyphs, width 1000
	e := mathexpr.NewFraction(num, denom, nil)

	box := layoutFraction(e, shaper, mathexpr.DisplayStyle())
	children := box.Content().Boxes
	if len(children) != 3 {
		t.Fatalf("expected numerator, bar, denominator, got %d children", len(children))
	}
	numBox, bar, denomBox := children[0], children[1], children[2]

	barWidth := numBox.Width().Max(denomBox.Width())
	if bar.Width() != barWidth {
		t.Errorf("bar width = %v, want %v", bar.Width(), barWidth)
	}
	wantNumX := (barWidth - numBox.Width()) / 2
	if numBox.Origin.X != wantNumX {
		t.Errorf("numerator X = %v, want %v (centered against bar width %v)", numBox.Origin.X, wantNumX, barWidth)
	}
	if denomBox.Origin.X != 0 {
		t.Errorf("the wider part should sit flush at X=0, got %v", denomBox.Origin.X)
	}
}

func TestLayoutFractionExplicitThicknessOverridesDefault(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	num := mathexpr.NewField(mathexpr.UnicodeField("n"))
	denom := mathexpr.NewField(mathexpr.UnicodeField("d"))
	thickness := layout.PointLength(99)
	e := mathexpr.NewFraction(num, denom, &thickness)

	box := layoutFraction(e, shaper, mathexpr.DisplayStyle())
	bar := box.Content().Boxes[1]
	if bar.Content().LineThickness != 99 {
		t.Errorf("expected explicit rule thickness 99, got %v", bar.Content().LineThickness)
	}
}

func TestLayoutFractionZeroThicknessOmitsTheBar(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	num := mathexpr.NewField(mathexpr.UnicodeField("n"))
	denom := mathexpr.NewField(mathexpr.UnicodeField("d"))
	thickness := layout.PointLength(0)
	e := mathexpr.NewFraction(num, denom, &thickness)

	box := layoutFraction(e, shaper, mathexpr.DisplayStyle())
	children := box.Content().Boxes
	if len(children) != 2 {
		t.Fatalf("zero thickness should stack numerator and denominator with no line box, got %d children", len(children))
	}
}

func TestLayoutFractionDisplayStyleShiftsDifferFromInline(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	num := mathexpr.NewField(mathexpr.UnicodeField("n"))
	denom := mathexpr.NewField(mathexpr.UnicodeField("d"))
	e := mathexpr.NewFraction(num, denom, nil)

	display := layoutFraction(e, shaper, mathexpr.DisplayStyle())
	inlineStyle := mathexpr.DisplayStyle()
	inlineStyle.MathStyle = mathexpr.Inline
	inline := layoutFraction(e, shaper, inlineStyle)

	displayDenom := display.Content().Boxes[2]
	inlineDenom := inline.Content().Boxes[2]
	if displayDenom.Origin.Y == inlineDenom.Origin.Y {
		t.Error("display-style and inline-style fractions should place the denominator at different heights")
	}
}

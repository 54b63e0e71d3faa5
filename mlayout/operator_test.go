package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
)

func TestLayoutOperatorTokenNonStretchyIsBareField(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("+"), layout.Length{}, layout.Length{}, 0, nil, false)
	got := layoutOperatorToken(e, shaper, mathexpr.DisplayStyle())
	want := layoutField(e.OpField, shaper, mathexpr.DisplayStyle())
	if got.Width() != want.Width() {
		t.Errorf("non-stretchy operator should equal its bare field layout, got width %v want %v", got.Width(), want.Width())
	}
}

func TestLayoutOperatorTokenStretchyMatchesOwnNaturalSize(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{}, false)
	got := layoutOperatorToken(e, shaper, mathexpr.DisplayStyle())
	natural := layoutField(e.OpField, shaper, mathexpr.DisplayStyle())
	if got.Height() != natural.Height() {
		t.Errorf("a stretchy operator reached directly should stretch to its own natural height, got %v want %v", got.Height(), natural.Height())
	}
}

func TestLayoutOperatorTokenStretchyMinSizeFloor(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	min := layout.PointLength(2000)
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{MinSize: &min}, false)
	got := layoutOperatorToken(e, shaper, mathexpr.DisplayStyle())
	if got.Height() < 2000 {
		t.Errorf("expected min-size floor to raise height to 2000, got %v", got.Height())
	}
}

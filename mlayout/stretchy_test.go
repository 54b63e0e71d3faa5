package mlayout

import (
	"testing"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/mathshape"
)

func TestIsStretchyOperator(t *testing.T) {
	field := mathexpr.NewField(mathexpr.UnicodeField("a"))
	plain := mathexpr.NewOperator(mathexpr.UnicodeField("+"), layout.Length{}, layout.Length{}, 0, nil, false)
	stretchy := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0, &mathexpr.StretchConstraints{}, false)

	if isStretchyOperator(field) {
		t.Error("a plain field is never a stretchy operator")
	}
	if isStretchyOperator(plain) {
		t.Error("an operator without Stretch constraints is not stretchy")
	}
	if !isStretchyOperator(stretchy) {
		t.Error("an operator with Stretch constraints should be reported as stretchy")
	}
}

func TestShapeStretchyToPlainTarget(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0, &mathexpr.StretchConstraints{}, false)
	got := shapeStretchyTo(e, shaper, mathexpr.DisplayStyle(), false, 100, 200)
	if got.Height() != 300 {
		t.Errorf("height = %v, want 300 (ascent+descent, no symmetry/min/max)", got.Height())
	}
}

func TestShapeStretchyToSymmetricRebalancesAboutAxis(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{Symmetric: true}, false)
	got := shapeStretchyTo(e, shaper, mathexpr.DisplayStyle(), false, 100, 500)
	// axis=250; max(100-250, 500+250)=750; a2=750+250=1000, d2=750-250=500; height=1500.
	if got.Height() != 1500 {
		t.Errorf("height = %v, want 1500", got.Height())
	}
}

func TestShapeStretchyToMinSizeFloor(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	min := layout.PointLength(2000)
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{MinSize: &min}, false)
	got := shapeStretchyTo(e, shaper, mathexpr.DisplayStyle(), false, 100, 200)
	if got.Height() != 2000 {
		t.Errorf("height = %v, want 2000 (min-size floor)", got.Height())
	}
}

func TestShapeStretchyToMaxSizeCeiling(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	max := layout.PointLength(50)
	e := mathexpr.NewOperator(mathexpr.UnicodeField("("), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{MaxSize: &max}, false)
	got := shapeStretchyTo(e, shaper, mathexpr.DisplayStyle(), false, 100, 200)
	if got.Height() != 50 {
		t.Errorf("height = %v, want 50 (max-size ceiling)", got.Height())
	}
}

func TestShapeStretchyToLargeOperatorDisplayMinHeight(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("∑"), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{}, true)
	got := shapeStretchyTo(e, shaper, mathexpr.DisplayStyle(), false, 50, 50)
	if got.Height() != shaper.MathConstant(mathshape.DisplayOperatorMinHeight) {
		t.Errorf("height = %v, want the display operator min height %v", got.Height(), shaper.MathConstant(mathshape.DisplayOperatorMinHeight))
	}
}

func TestShapeStretchyToLargeOperatorNotAppliedInline(t *testing.T) {
	shaper := mathshape.NewStubShaper()
	e := mathexpr.NewOperator(mathexpr.UnicodeField("∑"), layout.Length{}, layout.Length{}, 0,
		&mathexpr.StretchConstraints{}, true)
	style := mathexpr.DisplayStyle()
	style.MathStyle = mathexpr.Inline
	got := shapeStretchyTo(e, shaper, style, false, 50, 50)
	if got.Height() != 100 {
		t.Errorf("height = %v, want 100 (large-op floor only applies in display style)", got.Height())
	}
}

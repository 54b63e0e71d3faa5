package mathexpr

import "testing"

func TestSuperscriptStyleDemotesDisplay(t *testing.T) {
	s := DisplayStyle()
	sup := s.SuperscriptStyle()
	if sup.MathStyle != Inline {
		t.Errorf("SuperscriptStyle().MathStyle = %v, want Inline", sup.MathStyle)
	}
	if sup.ScriptLevel != 1 {
		t.Errorf("SuperscriptStyle().ScriptLevel = %d, want 1", sup.ScriptLevel)
	}
	if sup.IsCramped != s.IsCramped {
		t.Errorf("SuperscriptStyle().IsCramped = %v, want unchanged %v", sup.IsCramped, s.IsCramped)
	}
}

func TestSubscriptStyleAlwaysCramped(t *testing.T) {
	s := LayoutStyle{MathStyle: Inline, ScriptLevel: 0, IsCramped: false}
	sub := s.SubscriptStyle()
	if !sub.IsCramped {
		t.Error("SubscriptStyle() must be cramped regardless of base crampedness")
	}
}

func TestCrampedStylePreservesOtherFields(t *testing.T) {
	s := LayoutStyle{MathStyle: Display, ScriptLevel: 2, IsCramped: false}
	c := s.CrampedStyle()
	if c.MathStyle != Display || c.ScriptLevel != 2 || !c.IsCramped {
		t.Errorf("CrampedStyle() = %+v, want Display/2/true", c)
	}
}

func TestRadicalDegreeStyle(t *testing.T) {
	s := LayoutStyle{MathStyle: Inline, ScriptLevel: 0}
	d := s.RadicalDegreeStyle()
	if d.ScriptLevel != 2 || d.MathStyle != Inline {
		t.Errorf("RadicalDegreeStyle() = %+v, want ScriptLevel=2, MathStyle=Inline", d)
	}
}

func TestScaleTier(t *testing.T) {
	tests := []struct {
		level int
		want  ScriptScaleTier
	}{
		{0, ScaleText},
		{1, ScaleScript},
		{2, ScaleScriptScript},
		{5, ScaleScriptScript},
	}
	for _, tt := range tests {
		s := LayoutStyle{ScriptLevel: tt.level}
		if got := s.ScaleTier(); got != tt.want {
			t.Errorf("ScaleTier() at level %d = %v, want %v", tt.level, got, tt.want)
		}
	}
}

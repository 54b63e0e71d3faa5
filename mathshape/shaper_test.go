package mathshape

import (
	"errors"
	"testing"

	"github.com/typeset/mathlayout/mathexpr"
)

func TestShapingGuardRejectsReentrantCall(t *testing.T) {
	g := newShapingGuard("test")
	if err := g.Enter(); err != nil {
		t.Fatalf("first Enter: unexpected error %v", err)
	}
	err := g.Enter()
	if err == nil {
		t.Fatal("second Enter: expected ReentrantShapeError, got nil")
	}
	var reentrant *ReentrantShapeError
	if !errors.As(err, &reentrant) {
		t.Fatalf("expected *ReentrantShapeError, got %T", err)
	}
	g.Exit()
	if err := g.Enter(); err != nil {
		t.Fatalf("Enter after Exit: unexpected error %v", err)
	}
}

func TestCornerPositionMirrorLaws(t *testing.T) {
	corners := []CornerPosition{TopLeft, TopRight, BottomLeft, BottomRight}
	for _, c := range corners {
		if got, want := c.HorizontalMirror().HorizontalMirror(), c; got != want {
			t.Errorf("HorizontalMirror twice: got %v, want %v", got, want)
		}
		if got, want := c.VerticalMirror().VerticalMirror(), c; got != want {
			t.Errorf("VerticalMirror twice: got %v, want %v", got, want)
		}
		if got, want := c.DiagonalMirror(), c.VerticalMirror().HorizontalMirror(); got != want {
			t.Errorf("DiagonalMirror(%v) = %v, want horizontal(vertical(c)) = %v", c, got, want)
		}
		if got, want := c.HorizontalMirror().VerticalMirror(), c.VerticalMirror().HorizontalMirror(); got != want {
			t.Errorf("mirror composition not commutative for %v: %v vs %v", c, got, want)
		}
	}
}

func TestStubShaperShapeStringSucceedsUnderGuard(t *testing.T) {
	s := NewStubShaper()
	_, err := s.ShapeString("x", mathexpr.DisplayStyle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStubShaperGlyphDefaults(t *testing.T) {
	s := NewStubShaper()
	if adv := s.GlyphAdvance(uint16('x')); adv != s.Default.Advance {
		t.Errorf("GlyphAdvance default: got %v, want %v", adv, s.Default.Advance)
	}
	s.SetGlyph('x', GlyphMetric{Advance: 700})
	if adv := s.GlyphAdvance(uint16('x')); adv != 700 {
		t.Errorf("GlyphAdvance after SetGlyph: got %v, want 700", adv)
	}
}

func TestStubShaperShapeStretchyMeetsTargetSize(t *testing.T) {
	s := NewStubShaper()
	boxes, err := s.ShapeStretchy("(", false, 2000, mathexpr.DisplayStyle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	if h := boxes[0].Height(); h != 2000 {
		t.Errorf("Height: got %v, want 2000", h)
	}
}

func TestStubShaperMathConstant(t *testing.T) {
	s := NewStubShaper()
	if v := s.MathConstant(AxisHeight); v != 250 {
		t.Errorf("AxisHeight: got %v, want 250", v)
	}
	if v := s.MathConstant(MathConstant(9999)); v != 0 {
		t.Errorf("unknown constant: got %v, want 0", v)
	}
}

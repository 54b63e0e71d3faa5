package layout

import "math"

// Abs is an absolute length in font design units. The math layout engine
// works entirely in the design-unit space of the font being laid out with;
// callers scale to device units once at the end of the pipeline.
type Abs float64

// Common unit constants, kept for callers that size a document-level font
// in points before resolving em-relative lengths against it.
const (
	Pt Abs = 1.0
	Mm Abs = 2.8346456692913
	Cm Abs = 28.346456692913
	In Abs = 72.0
)

// IsZero reports whether the length is exactly zero.
func (a Abs) IsZero() bool {
	return a == 0
}

// Abs returns the absolute value of the length.
func (a Abs) Abs() Abs {
	if a < 0 {
		return -a
	}
	return a
}

// Min returns the smaller of two lengths.
func (a Abs) Min(b Abs) Abs {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two lengths.
func (a Abs) Max(b Abs) Abs {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts the length to [lo, hi].
func (a Abs) Clamp(lo, hi Abs) Abs {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Em is a length expressed as a multiple of the font's em size. It is
// resolved to an Abs once the font size for the current style is known.
type Em float64

// At resolves the em length against a concrete font size.
func (e Em) At(fontSize Abs) Abs {
	return Abs(float64(e) * float64(fontSize))
}

// LengthUnit is the unit tag on a raw, unresolved Length value coming from
// parsed markup (attribute values, dictionary entries).
type LengthUnit int

const (
	// UnitPoint is an absolute length in points.
	UnitPoint LengthUnit = iota
	// UnitEm is relative to the current font size.
	UnitEm
	// UnitDisplayOperatorMinHeight resolves against the shaper's
	// DisplayOperatorMinHeight math constant rather than the font size.
	UnitDisplayOperatorMinHeight
)

// Length is a value with a deferred unit, as found on parsed attributes and
// in operator-dictionary entries. It has no meaning until Resolve is called
// against a font size (and, for the special unit, a math constant).
type Length struct {
	Value float64
	Unit  LengthUnit
}

// PointLength constructs a Length in points.
func PointLength(v float64) Length { return Length{Value: v, Unit: UnitPoint} }

// EmLength constructs a Length in ems.
func EmLength(v float64) Length { return Length{Value: v, Unit: UnitEm} }

// Resolve converts the length to absolute font design units given the
// current font size. UnitDisplayOperatorMinHeight must be resolved by the
// caller directly from the shaper's math constant; Resolve treats it as
// zero since it has no access to a shaper.
func (l Length) Resolve(fontSize Abs) Abs {
	switch l.Unit {
	case UnitEm:
		return Em(l.Value).At(fontSize)
	case UnitPoint:
		return Abs(l.Value)
	default:
		return 0
	}
}

// IsZero reports whether the length is the zero value in its own unit.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// PercentScale is an integer percentage, 0..100, composing multiplicatively.
type PercentScale int

// Apply scales a length by the percentage.
func (p PercentScale) Apply(a Abs) Abs {
	return Abs(float64(a) * float64(p) / 100.0)
}

// Point is a 2D offset. Y points down; ascent is measured as a positive
// distance upward from the baseline, so a box placed above the baseline has
// a negative Y origin.
type Point struct {
	X, Y Abs
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// WithX returns a point with only the X coordinate set.
func WithX(x Abs) Point { return Point{X: x} }

// WithY returns a point with only the Y coordinate set.
func WithY(y Abs) Point { return Point{Y: y} }

// Size is a width/height pair.
type Size struct {
	Width, Height Abs
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// AspectRatio returns width/height, or +Inf if height is zero.
func (s Size) AspectRatio() float64 {
	if s.Height == 0 {
		return math.Inf(1)
	}
	return float64(s.Width) / float64(s.Height)
}

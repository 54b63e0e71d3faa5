package mathexpr

import "github.com/typeset/mathlayout/layout"

// MathStyleLevel distinguishes the two top-level math styles the layout
// engine reasons about; everything finer (TeX's text/script/scriptscript
// ladder) is captured by ScriptLevel instead.
type MathStyleLevel int

const (
	Display MathStyleLevel = iota
	Inline
)

// StretchSize is an ancestor-supplied target a List's stretchy pass clamps
// its target ascent/descent against. It is set only through
// WithStretchSize; no layout construct passes one down to a nested List.
type StretchSize struct {
	Ascent, Descent layout.Abs
}

// LayoutStyle is the context threaded through the layout engine: which of
// the two math styles is active, how many script levels deep we are (used
// to pick the script-scale-down factor), whether the current context is
// cramped (superscripts of cramped bases don't get extra lift), and an
// optional ancestor stretch-size constraint.
type LayoutStyle struct {
	MathStyle   MathStyleLevel
	ScriptLevel int
	IsCramped   bool
	StretchSize *StretchSize
}

// DisplayStyle is the initial style layout begins with: display math,
// script level zero, uncramped, no inbound stretch-size constraint.
func DisplayStyle() LayoutStyle {
	return LayoutStyle{MathStyle: Display, ScriptLevel: 0, IsCramped: false}
}

// WithStretchSize returns the same style carrying the given ancestor
// stretch-size constraint, for threading into a nested List's stretchy pass.
func (s LayoutStyle) WithStretchSize(size StretchSize) LayoutStyle {
	s.StretchSize = &size
	return s
}

// SuperscriptStyle is the style used for a superscript attachment: display
// demotes to inline, crampedness is inherited unchanged, and script level
// increases by one.
func (s LayoutStyle) SuperscriptStyle() LayoutStyle {
	style := s.MathStyle
	if style == Display {
		style = Inline
	}
	return LayoutStyle{MathStyle: style, ScriptLevel: s.ScriptLevel + 1, IsCramped: s.IsCramped}
}

// SubscriptStyle is SuperscriptStyle further cramped, since subscripts are
// always cramped regardless of the base's crampedness.
func (s LayoutStyle) SubscriptStyle() LayoutStyle {
	return s.SuperscriptStyle().CrampedStyle()
}

// CrampedStyle returns the same style with IsCramped forced true.
func (s LayoutStyle) CrampedStyle() LayoutStyle {
	s.IsCramped = true
	return s
}

// RadicalDegreeStyle is the style used to lay out a root's degree: two
// script levels deeper, always inline.
func (s LayoutStyle) RadicalDegreeStyle() LayoutStyle {
	return LayoutStyle{MathStyle: Inline, ScriptLevel: s.ScriptLevel + 2, IsCramped: s.IsCramped}
}

// ScriptScaleTier names which of the three script-scale percentages applies
// at a style's script level: 100 at level 0, ScriptPercentScaleDown at
// level 1, ScriptScriptPercentScaleDown at level 2 or deeper. The actual
// percentages live on the shaper's MATH constants; this just picks which
// one applies.
type ScriptScaleTier int

const (
	ScaleText ScriptScaleTier = iota
	ScaleScript
	ScaleScriptScript
)

// ScaleTier classifies the current script level into the three tiers a
// shaper's constants distinguish.
func (s LayoutStyle) ScaleTier() ScriptScaleTier {
	switch {
	case s.ScriptLevel <= 0:
		return ScaleText
	case s.ScriptLevel == 1:
		return ScaleScript
	default:
		return ScaleScriptScript
	}
}

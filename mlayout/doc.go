// Package mlayout lays out a normalized math expression tree into a tree of
// positioned glyph boxes. It consumes mathexpr.Expr nodes and a
// mathshape.Shaper, and is the only package that calls into the shaper to
// produce mbox.MathBox output.
//
// Layout is total on well-formed input: shaping failures surface as empty
// boxes rather than errors, and missing MATH constants are read as zero by
// the shaper layer beneath this package. Only a violated internal
// precondition (an unhandled expression kind) panics with
// *mathml.LayoutAssertion — a logic bug, never a malformed-input condition.
package mlayout

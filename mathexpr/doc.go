// Package mathexpr defines the expression tree that the MathML normalizer
// produces and the layout engine consumes: a small, closed set of math
// items (fields, spaces, atoms, over/unders, fractions, roots, operators,
// and lists), a side-information store for parser-time metadata that must
// not leak into the public item shape, and the style/context model that
// threads math style, script level, and crampedness through layout.
package mathexpr

// Package mbox implements the geometric output model of the layout
// engine: points, extents, bounds, and the lazily-measured MathBox tree
// that layout produces. A MathBox tree is immutable once returned from
// layout; glyph boxes hold a non-owning reference to whatever supplied
// their metrics (normally a mathshape.Shaper) and are only valid for as
// long as that source lives.
package mbox

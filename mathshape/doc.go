// Package mathshape defines the Shaper contract the layout engine queries
// for glyph metrics, MATH-table constants, math kerning, and string/
// stretchy shaping, plus a concrete implementation backed by
// go-text/typesetting's OpenType font parser and a deterministic in-memory
// stub used by tests that don't want to load a real font.
package mathshape

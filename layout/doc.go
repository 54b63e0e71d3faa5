// Package layout provides the shared geometric primitives used throughout
// the math typesetting pipeline: absolute and font-relative lengths, points,
// and sizes. Every other package builds its coordinate math on top of these
// types rather than rolling its own.
package layout

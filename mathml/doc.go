// Package mathml parses the MathML subset into an expression tree
// (github.com/typeset/mathlayout/mathexpr), including operator-form
// inference and operator-dictionary default merging. Tokenization rides on
// the standard library's encoding/xml decoder; the error taxonomy and the
// element/attribute semantics are MathML's own, not XML's.
package mathml

package mathshape

// MathTable abstracts access to a parsed OpenType MATH table. It is the
// seam between this package's font-design-unit API and the raw table
// records (MathValueRecord, MathKernInfo, MathVariants), so OpenTypeShaper
// itself never has to know their exact layout. The implementation returned
// by ParseMathTable (otMathTable in otmath.go) reads those records from the
// raw MATH table bytes itself.
type MathTable interface {
	// Constant returns a MATH constant's raw value in font design units.
	// The bool is false if the table omits the field (callers fall back
	// to zero, so missing MATH constants fall back to reasonable zero
	// defaults rather than propagating an error).
	Constant(kind MathConstant) (int32, bool)

	// ItalicCorrection returns a glyph's MathItalicsCorrectionInfo entry.
	ItalicCorrection(glyph uint16) (int32, bool)

	// TopAccentAttachment returns a glyph's MathTopAccentAttachment entry.
	TopAccentAttachment(glyph uint16) (int32, bool)

	// Kern evaluates the glyph's per-corner kern curve at correctionHeight.
	Kern(glyph uint16, corner CornerPosition, correctionHeight int32) (int32, bool)

	// Variants returns the ordered list of precomposed glyph variants for
	// a stretchy base glyph along the given axis (horizontal or vertical),
	// largest-size-last, plus whether an assembly recipe exists.
	Variants(glyph uint16, horizontal bool) (variants []GlyphVariant, hasAssembly bool)

	// Assembly returns the glyph-part assembly recipe for a stretchy base
	// glyph, if MathTable.Variants reported hasAssembly.
	Assembly(glyph uint16, horizontal bool) (parts []AssemblyPart, italicsCorrection int32)

	// MinConnectorOverlap is the minimum amount by which adjacent
	// assembly parts must overlap.
	MinConnectorOverlap() int32
}

// GlyphVariant is one entry of a stretchy base glyph's variant list.
type GlyphVariant struct {
	Glyph         uint16
	AdvanceMeasure int32 // size along the stretch axis
}

// AssemblyPart is one piece of a glyph assembly recipe.
type AssemblyPart struct {
	Glyph              uint16
	IsExtender         bool
	StartConnectorLen  int32
	EndConnectorLen    int32
	FullAdvance        int32
}

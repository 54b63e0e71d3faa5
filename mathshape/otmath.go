package mathshape

import (
	"encoding/binary"
	"fmt"
)

// ParseMathTable locates and parses the "MATH" table out of a raw sfnt font
// file's bytes (TTF/OTF table directory, not a TTC collection) and returns
// a MathTable backed directly by its binary layout. The OpenType MATH
// table format is part of the public spec and stable across fonts, so this
// parses it directly rather than going through go-text/typesetting's own
// table types, which this module otherwise relies on for everything else
// (glyph metrics, shaping) via OpenTypeShaper.
func ParseMathTable(fontData []byte) (MathTable, error) {
	table, err := findSFNTTable(fontData, "MATH")
	if err != nil {
		return nil, err
	}
	if len(table) < 6 {
		return nil, fmt.Errorf("mathshape: MATH table too short")
	}
	m := &otMathTable{data: table}

	constants := readOffset16(table, 4)
	glyphInfo := readOffset16(table, 6)
	variants := readOffset16(table, 8)
	if constants != 0 && int(constants) <= len(table) {
		m.constants = table[constants:]
	}
	if glyphInfo != 0 && int(glyphInfo) <= len(table) {
		m.glyphInfo = table[glyphInfo:]
	}
	if variants != 0 && int(variants) <= len(table) {
		m.variants = table[variants:]
	}
	return m, nil
}

// findSFNTTable walks an sfnt table directory (shared by TTF and OTF) and
// returns the raw bytes of the table with the given 4-byte tag.
func findSFNTTable(data []byte, tag string) ([]byte, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("mathshape: font data too short")
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	const recordSize = 16
	const headerSize = 12
	for i := 0; i < numTables; i++ {
		rec := data[headerSize+i*recordSize:]
		if len(rec) < recordSize {
			break
		}
		if string(rec[0:4]) == tag {
			offset := binary.BigEndian.Uint32(rec[8:12])
			length := binary.BigEndian.Uint32(rec[12:16])
			end := uint64(offset) + uint64(length)
			if end > uint64(len(data)) {
				return nil, fmt.Errorf("mathshape: %s table extends past end of file", tag)
			}
			return data[offset:end], nil
		}
	}
	return nil, fmt.Errorf("mathshape: font has no %s table", tag)
}

func readOffset16(b []byte, at int) uint16 {
	if at+2 > len(b) {
		return 0
	}
	return binary.BigEndian.Uint16(b[at : at+2])
}

func readInt16(b []byte, at int) int32 {
	if at+2 > len(b) {
		return 0
	}
	return int32(int16(binary.BigEndian.Uint16(b[at : at+2])))
}

// otMathTable implements MathTable against the raw bytes of a parsed MATH
// table, sliced into its three subtables (constants, glyph info, variants).
type otMathTable struct {
	data      []byte
	constants []byte
	glyphInfo []byte
	variants  []byte
}

// constantFieldOffset returns the byte offset and record size (2 for a
// plain value, 4 for a MathValueRecord, of which only the leading int16 is
// read since device tables are not consulted) of a MathConstant within the
// MathConstants subtable, per its fixed OpenType layout.
func constantFieldOffset(kind MathConstant) (offset, width int, ok bool) {
	switch {
	case kind <= DisplayOperatorMinHeight:
		return int(kind) * 2, 2, true
	case kind == RadicalDegreeBottomRaisePercent:
		return 212, 2, true
	case kind >= MathLeading && kind <= RadicalKernAfterDegree:
		return 8 + (int(kind)-int(MathLeading))*4, 2, true
	default:
		return 0, 0, false
	}
}

func (m *otMathTable) Constant(kind MathConstant) (int32, bool) {
	if kind == MinConnectorOverlap {
		if m.variants == nil || len(m.variants) < 2 {
			return 0, false
		}
		return int32(binary.BigEndian.Uint16(m.variants[0:2])), true
	}
	if m.constants == nil {
		return 0, false
	}
	offset, _, ok := constantFieldOffset(kind)
	if !ok || offset+2 > len(m.constants) {
		return 0, false
	}
	return readInt16(m.constants, offset), true
}

func (m *otMathTable) MinConnectorOverlap() int32 {
	v, _ := m.Constant(MinConnectorOverlap)
	return v
}

// parseCoverage reads a Coverage table (format 1 glyph list or format 2
// range list) into a glyph -> coverage-index map.
func parseCoverage(data []byte) map[uint16]int {
	out := map[uint16]int{}
	if len(data) < 4 {
		return out
	}
	format := binary.BigEndian.Uint16(data[0:2])
	count := int(binary.BigEndian.Uint16(data[2:4]))
	switch format {
	case 1:
		for i := 0; i < count; i++ {
			at := 4 + i*2
			if at+2 > len(data) {
				break
			}
			glyph := binary.BigEndian.Uint16(data[at : at+2])
			out[glyph] = i
		}
	case 2:
		for i := 0; i < count; i++ {
			at := 4 + i*6
			if at+6 > len(data) {
				break
			}
			start := binary.BigEndian.Uint16(data[at : at+2])
			end := binary.BigEndian.Uint16(data[at+2 : at+4])
			startIndex := int(binary.BigEndian.Uint16(data[at+4 : at+6]))
			for g := int(start); g <= int(end); g++ {
				out[uint16(g)] = startIndex + (g - int(start))
			}
		}
	}
	return out
}

// glyphValueRecord returns one of MathGlyphInfo's two MathValueRecord
// association tables (MathItalicsCorrectionInfo or MathTopAccentAttachment,
// both offset16 fields 0 and 2 of MathGlyphInfo) evaluated for glyph.
func (m *otMathTable) glyphValueRecord(glyph uint16, fieldOffset int) (int32, bool) {
	if m.glyphInfo == nil || fieldOffset+2 > len(m.glyphInfo) {
		return 0, false
	}
	sub := readOffset16(m.glyphInfo, fieldOffset)
	if sub == 0 || int(sub) >= len(m.glyphInfo) {
		return 0, false
	}
	table := m.glyphInfo[sub:]
	if len(table) < 4 {
		return 0, false
	}
	coverageOffset := readOffset16(table, 0)
	count := int(binary.BigEndian.Uint16(table[2:4]))
	if int(coverageOffset) >= len(table) {
		return 0, false
	}
	coverage := parseCoverage(table[coverageOffset:])
	idx, ok := coverage[glyph]
	if !ok || idx >= count {
		return 0, false
	}
	recOffset := 4 + idx*4
	if recOffset+2 > len(table) {
		return 0, false
	}
	return readInt16(table, recOffset), true
}

func (m *otMathTable) ItalicCorrection(glyph uint16) (int32, bool) {
	return m.glyphValueRecord(glyph, 0)
}

func (m *otMathTable) TopAccentAttachment(glyph uint16) (int32, bool) {
	return m.glyphValueRecord(glyph, 2)
}

// evalMathKern evaluates one per-glyph MathKern sub-table: an ascending
// list of correction heights paired with one more kern value than height,
// per the OpenType MATH spec's step-function definition.
func evalMathKern(table []byte, correctionHeight int32) int32 {
	if len(table) < 2 {
		return 0
	}
	heightCount := int(binary.BigEndian.Uint16(table[0:2]))
	heights := table[2:]
	values := heights[heightCount*4:]

	i := 0
	for ; i < heightCount; i++ {
		at := i * 4
		if at+2 > len(heights) {
			break
		}
		h := readInt16(heights, at)
		if correctionHeight < h {
			break
		}
	}
	at := i * 4
	if at+2 > len(values) {
		return 0
	}
	return readInt16(values, at)
}

func (m *otMathTable) Kern(glyph uint16, corner CornerPosition, correctionHeight int32) (int32, bool) {
	if m.glyphInfo == nil {
		return 0, false
	}
	kernInfoOffset := readOffset16(m.glyphInfo, 6)
	if kernInfoOffset == 0 || int(kernInfoOffset) >= len(m.glyphInfo) {
		return 0, false
	}
	kernInfo := m.glyphInfo[kernInfoOffset:]
	if len(kernInfo) < 4 {
		return 0, false
	}
	coverageOffset := readOffset16(kernInfo, 0)
	count := int(binary.BigEndian.Uint16(kernInfo[2:4]))
	coverage := parseCoverage(kernInfo[coverageOffset:])
	idx, ok := coverage[glyph]
	if !ok || idx >= count {
		return 0, false
	}
	recOffset := 4 + idx*8
	if recOffset+8 > len(kernInfo) {
		return 0, false
	}
	var fieldOffset int
	switch corner {
	case TopRight:
		fieldOffset = 0
	case TopLeft:
		fieldOffset = 2
	case BottomRight:
		fieldOffset = 4
	case BottomLeft:
		fieldOffset = 6
	}
	sub := readOffset16(kernInfo, recOffset+fieldOffset)
	if sub == 0 || int(sub) >= len(kernInfo) {
		return 0, false
	}
	return evalMathKern(kernInfo[sub:], correctionHeight), true
}

// axisTables returns the coverage map and per-glyph construction-table
// offset list for one stretch axis.
func (m *otMathTable) axisTables(horizontal bool) (coverage map[uint16]int, offsets []byte, count int) {
	if m.variants == nil || len(m.variants) < 10 {
		return nil, nil, 0
	}
	vertCoverageOffset := readOffset16(m.variants, 2)
	horizCoverageOffset := readOffset16(m.variants, 4)
	vertCount := int(binary.BigEndian.Uint16(m.variants[6:8]))
	horizCount := int(binary.BigEndian.Uint16(m.variants[8:10]))

	offsetsStart := 10
	if horizontal {
		offsetsStart += vertCount * 2
		if int(horizCoverageOffset) >= len(m.variants) {
			return nil, nil, 0
		}
		return parseCoverage(m.variants[horizCoverageOffset:]), m.variants[offsetsStart:], horizCount
	}
	if int(vertCoverageOffset) >= len(m.variants) {
		return nil, nil, 0
	}
	return parseCoverage(m.variants[vertCoverageOffset:]), m.variants[offsetsStart:], vertCount
}

func (m *otMathTable) construction(glyph uint16, horizontal bool) []byte {
	coverage, offsets, count := m.axisTables(horizontal)
	if coverage == nil {
		return nil
	}
	idx, ok := coverage[glyph]
	if !ok || idx >= count {
		return nil
	}
	at := idx * 2
	if at+2 > len(offsets) {
		return nil
	}
	off := binary.BigEndian.Uint16(offsets[at : at+2])
	if off == 0 || int(off) >= len(m.variants) {
		return nil
	}
	return m.variants[off:]
}

func (m *otMathTable) Variants(glyph uint16, horizontal bool) (variants []GlyphVariant, hasAssembly bool) {
	constr := m.construction(glyph, horizontal)
	if constr == nil || len(constr) < 4 {
		return nil, false
	}
	assemblyOffset := readOffset16(constr, 0)
	count := int(binary.BigEndian.Uint16(constr[2:4]))
	variants = make([]GlyphVariant, 0, count)
	for i := 0; i < count; i++ {
		at := 4 + i*4
		if at+4 > len(constr) {
			break
		}
		glyphID := binary.BigEndian.Uint16(constr[at : at+2])
		advance := binary.BigEndian.Uint16(constr[at+2 : at+4])
		variants = append(variants, GlyphVariant{Glyph: glyphID, AdvanceMeasure: int32(advance)})
	}
	return variants, assemblyOffset != 0
}

func (m *otMathTable) Assembly(glyph uint16, horizontal bool) (parts []AssemblyPart, italicsCorrection int32) {
	constr := m.construction(glyph, horizontal)
	if constr == nil || len(constr) < 2 {
		return nil, 0
	}
	assemblyOffset := readOffset16(constr, 0)
	if assemblyOffset == 0 || int(assemblyOffset) >= len(constr) {
		return nil, 0
	}
	assembly := constr[assemblyOffset:]
	if len(assembly) < 6 {
		return nil, 0
	}
	italicsCorrection = readInt16(assembly, 0)
	partCount := int(binary.BigEndian.Uint16(assembly[4:6]))
	parts = make([]AssemblyPart, 0, partCount)
	for i := 0; i < partCount; i++ {
		at := 6 + i*10
		if at+10 > len(assembly) {
			break
		}
		glyphID := binary.BigEndian.Uint16(assembly[at : at+2])
		startConnector := binary.BigEndian.Uint16(assembly[at+2 : at+4])
		endConnector := binary.BigEndian.Uint16(assembly[at+4 : at+6])
		fullAdvance := binary.BigEndian.Uint16(assembly[at+6 : at+8])
		flags := binary.BigEndian.Uint16(assembly[at+8 : at+10])
		parts = append(parts, AssemblyPart{
			Glyph:             glyphID,
			IsExtender:        flags&1 != 0,
			StartConnectorLen: int32(startConnector),
			EndConnectorLen:   int32(endConnector),
			FullAdvance:       int32(fullAdvance),
		})
	}
	return parts, italicsCorrection
}

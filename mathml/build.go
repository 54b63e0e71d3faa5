package mathml

import (
	"encoding/xml"

	"github.com/typeset/mathlayout/layout"
	"github.com/typeset/mathlayout/mathexpr"
	"github.com/typeset/mathlayout/opdict"
)

// parseToken builds a token-schema element (mi, mn, mtext, mo, mspace).
func parseToken(dec *xml.Decoder, start xml.StartElement, elem Element, attrs attrSet, state *parserState) (*mathexpr.Expr, error) {
	if elem == ElementMspace {
		if err := expectEnd(dec, start.Name); err != nil {
			return nil, err
		}
		width, err := lengthAttr(dec, attrs, "width")
		if err != nil {
			return nil, err
		}
		height, err := lengthAttr(dec, attrs, "height")
		if err != nil {
			return nil, err
		}
		depth, err := lengthAttr(dec, attrs, "depth")
		if err != nil {
			return nil, err
		}
		return mathexpr.NewSpace(width, height, depth), nil
	}

	rawText, err := readTokenText(dec, start.Name)
	if err != nil {
		return nil, err
	}
	text := normalizeTokenText(rawText)

	if elem == ElementMo {
		field := mathexpr.NewField(mathexpr.UnicodeField(text))
		opAttrs, err := buildOperatorAttrs(dec, attrs)
		if err != nil {
			return nil, err
		}
		state.attachOperatorAttrs(field, opAttrs)
		return field, nil
	}

	variant := VariantNormal
	if v, ok := attrs.str("mathvariant"); ok {
		var known bool
		variant, known = parseMathVariant(v)
		if !known {
			// Unrecognized mathvariant values are tolerated locally,
			// falling back to the default.
			variant = VariantNormal
			if elem == ElementMi {
				variant = defaultVariantForMi(text)
			}
		}
	} else if elem == ElementMi {
		variant = defaultVariantForMi(text)
	}
	text = applyMathVariant(text, variant)

	return mathexpr.NewField(mathexpr.UnicodeField(text)), nil
}

// parseList builds a list-schema element (mrow, math, msqrt).
func parseList(dec *xml.Decoder, start xml.StartElement, elem Element, state *parserState) (*mathexpr.Expr, error) {
	children, err := readChildren(dec, state)
	if err != nil {
		return nil, err
	}
	resolveOperatorsInList(children, state)

	if elem == ElementMsqrt {
		return mathexpr.NewRoot(mathexpr.NewList(children), nil), nil
	}
	return mathexpr.NewList(children), nil
}

// parseFixed builds a fixed-arity-2 element (mfrac, mroot).
func parseFixed(dec *xml.Decoder, start xml.StartElement, elem Element, attrs attrSet, state *parserState, n int) (*mathexpr.Expr, error) {
	children, err := readChildren(dec, state)
	if err != nil {
		return nil, err
	}
	if len(children) != n {
		return nil, &ParseError{Kind: ArityMismatch, Offset: int(dec.InputOffset()), Detail: elem.String(), Expected: n, Actual: len(children)}
	}

	switch elem {
	case ElementMfrac:
		var thickness *layout.Length
		if raw, ok := attrs.str("linethickness"); ok {
			l, ok := parseLength(raw)
			if !ok {
				return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "linethickness=" + raw}
			}
			thickness = &l
		}
		return mathexpr.NewFraction(children[0], children[1], thickness), nil
	case ElementMroot:
		return mathexpr.NewRoot(children[0], children[1]), nil
	default:
		return nil, &ParseError{Kind: ArityMismatch, Offset: int(dec.InputOffset()), Detail: elem.String(), Expected: n, Actual: len(children)}
	}
}

// parseScripts builds msub/msup/msubsup.
func parseScripts(dec *xml.Decoder, start xml.StartElement, elem Element, attrs attrSet, state *parserState) (*mathexpr.Expr, error) {
	n := arity(elem)
	children, err := readChildren(dec, state)
	if err != nil {
		return nil, err
	}
	if len(children) != n {
		return nil, &ParseError{Kind: ArityMismatch, Offset: int(dec.InputOffset()), Detail: elem.String(), Expected: n, Actual: len(children)}
	}

	base := children[0]
	var sub, sup *mathexpr.Expr
	switch elem {
	case ElementMsub:
		sub = children[1]
	case ElementMsup:
		sup = children[1]
	case ElementMsubsup:
		sub, sup = children[1], children[2]
	}
	if sub != nil {
		resolveScriptOrAccentChild(sub, state)
	}
	if sup != nil {
		resolveScriptOrAccentChild(sup, state)
	}
	return mathexpr.NewAtom(base, nil, sup, nil, sub), nil
}

// parseOverUnder builds mover/munder/munderover.
func parseOverUnder(dec *xml.Decoder, start xml.StartElement, elem Element, attrs attrSet, state *parserState) (*mathexpr.Expr, error) {
	n := arity(elem)
	children, err := readChildren(dec, state)
	if err != nil {
		return nil, err
	}
	if len(children) != n {
		return nil, &ParseError{Kind: ArityMismatch, Offset: int(dec.InputOffset()), Detail: elem.String(), Expected: n, Actual: len(children)}
	}

	base := children[0]
	var over, under *mathexpr.Expr
	switch elem {
	case ElementMunder:
		under = children[1]
	case ElementMover:
		over = children[1]
	case ElementMunderover:
		under, over = children[1], children[2]
	}

	overAccent, underAccent := false, false
	if under != nil {
		resolveScriptOrAccentChild(under, state)
		underAccent = operatorFlags(under).Has(opdict.Accent)
	}
	if over != nil {
		resolveScriptOrAccentChild(over, state)
		overAccent = operatorFlags(over).Has(opdict.Accent)
	}
	if raw, ok := attrs.str("accent"); ok {
		if v, ok := parseBool(raw); ok {
			overAccent = v
		} else {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "accent=" + raw}
		}
	}
	if raw, ok := attrs.str("accentunder"); ok {
		if v, ok := parseBool(raw); ok {
			underAccent = v
		} else {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "accentunder=" + raw}
		}
	}

	return mathexpr.NewOverUnder(base, over, under, overAccent, underAccent), nil
}

// lengthAttr reads an optional length-valued attribute, defaulting to the
// zero Length (point, 0) if absent.
func lengthAttr(dec *xml.Decoder, attrs attrSet, name string) (layout.Length, error) {
	raw, ok := attrs.str(name)
	if !ok {
		return layout.Length{}, nil
	}
	l, ok := parseLength(raw)
	if !ok {
		return layout.Length{}, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: name + "=" + raw}
	}
	return l, nil
}

// buildOperatorAttrs parses an `mo` element's attributes into the
// side-table entry steps 2-3 of the disambiguation algorithm will consume.
func buildOperatorAttrs(dec *xml.Decoder, attrs attrSet) (*OperatorAttrs, error) {
	out := &OperatorAttrs{}

	if raw, ok := attrs.str("form"); ok {
		f, ok := opdict.ParseForm(raw)
		if !ok {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "form=" + raw}
		}
		out.FormExplicit = true
		out.Form = f
	}

	if raw, ok := attrs.str("lspace"); ok {
		l, ok := parseLength(raw)
		if !ok {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "lspace=" + raw}
		}
		out.LSpace = &l
	}
	if raw, ok := attrs.str("rspace"); ok {
		l, ok := parseLength(raw)
		if !ok {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "rspace=" + raw}
		}
		out.RSpace = &l
	}

	boolFlag := func(name string, bit opdict.Flags) error {
		raw, ok := attrs.str(name)
		if !ok {
			return nil
		}
		v, ok := parseBool(raw)
		if !ok {
			return &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: name + "=" + raw}
		}
		out.UserOverrides |= bit
		if v {
			out.Flags |= bit
		}
		return nil
	}
	for _, f := range []struct {
		name string
		bit  opdict.Flags
	}{
		{"fence", opdict.Fence},
		{"symmetric", opdict.Symmetric},
		{"stretchy", opdict.Stretchy},
		{"separator", opdict.Separator},
		{"largeop", opdict.LargeOp},
		{"movablelimits", opdict.MovableLimits},
		{"accent", opdict.Accent},
	} {
		if err := boolFlag(f.name, f.bit); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// CanonicalizeOperatorGlyph maps the ASCII hyphen-minus to the Unicode
// minus sign. It is not applied by Parse; the operator dictionary already
// prices "-" and "−" identically, so callers that want canonical Unicode
// operator glyphs in their output tree apply this themselves as a
// post-processing step once parsing (and any further shaping or
// normalization) is done.
func CanonicalizeOperatorGlyph(text string) string {
	if text == "-" {
		return "−"
	}
	return text
}

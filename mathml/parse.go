package mathml

import (
	"encoding/xml"
	"io"

	"github.com/typeset/mathlayout/mathexpr"
)

// Parse reads a MathML subset document and returns its normalized
// expression tree. The root element must be one of the supported element
// names; `math` is accepted but not required (a bare `mrow` or token is a
// valid top-level document for embedding contexts).
func Parse(r io.Reader) (*mathexpr.Expr, error) {
	dec := xml.NewDecoder(r)
	// Strict=false so an unrecognized named entity (outside the five XML
	// builtins) is passed through as literal "&name;" text rather than
	// aborting the XML tokenizer itself; decodeEntities then resolves it
	// against the MathML/HTML entity table with proper ParseError offsets.
	dec.Strict = false
	state := newParserState()

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, &ParseError{Kind: UnexpectedEndOfInput, Offset: int(dec.InputOffset())}
			}
			return nil, &ParseError{Kind: XmlError, Offset: int(dec.InputOffset()), Wrapped: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue // skip leading ProcInst/Comment/CharData (whitespace) before the root
		}
		expr, err := parseElement(dec, start, state)
		if err != nil {
			return nil, err
		}
		return expr, nil
	}
}

// parseElement parses one element (already opened as `start`) and its
// subtree, dispatching on the element's content schema.
func parseElement(dec *xml.Decoder, start xml.StartElement, state *parserState) (*mathexpr.Expr, error) {
	elem, ok := LookupElement(start.Name.Local)
	if !ok {
		return nil, &ParseError{Kind: UnknownElement, Offset: int(dec.InputOffset()), Detail: start.Name.Local}
	}

	attrs := parseAttrs(start.Attr)
	if dir, ok := attrs.str("dir"); ok {
		if _, ok := parseDirection(dir); !ok {
			return nil, &ParseError{Kind: BadAttribute, Offset: int(dec.InputOffset()), Detail: "dir=" + dir}
		}
	}

	switch schemaOf(elem) {
	case schemaToken:
		return parseToken(dec, start, elem, attrs, state)
	case schemaList:
		return parseList(dec, start, elem, state)
	case schemaFixed2:
		return parseFixed(dec, start, elem, attrs, state, 2)
	case schemaFixed2Or3Scripts:
		return parseScripts(dec, start, elem, attrs, state)
	case schemaFixed2Or3OverUnder:
		return parseOverUnder(dec, start, elem, attrs, state)
	default:
		return parseList(dec, start, elem, state)
	}
}

// expectEnd reads the next token, requiring it to be the EndElement
// matching name.
func expectEnd(dec *xml.Decoder, name xml.Name) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return &ParseError{Kind: UnexpectedEndOfInput, Offset: int(dec.InputOffset())}
		}
		return &ParseError{Kind: XmlError, Offset: int(dec.InputOffset()), Wrapped: err}
	}
	end, ok := tok.(xml.EndElement)
	if !ok || end.Name.Local != name.Local {
		got := name.Local
		if ok {
			got = end.Name.Local
		}
		return &ParseError{Kind: WrongEndElement, Offset: int(dec.InputOffset()), Detail: got}
	}
	return nil
}

// readChildren reads a sequence of child elements until the enclosing
// element's EndElement, collecting character data as whitespace-only
// no-ops between elements (MathML has no mixed element/text content at
// the list level).
func readChildren(dec *xml.Decoder, state *parserState) ([]*mathexpr.Expr, error) {
	var children []*mathexpr.Expr
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, &ParseError{Kind: UnexpectedEndOfInput, Offset: int(dec.InputOffset())}
			}
			return nil, &ParseError{Kind: XmlError, Offset: int(dec.InputOffset()), Wrapped: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t, state)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case xml.EndElement:
			return children, nil
		case xml.CharData:
			// whitespace between element children; non-whitespace text at
			// list level is not part of this element set and is ignored.
		}
	}
}

// readTokenText reads character data up to the enclosing element's
// EndElement, decoding entities as they're encountered. Token elements
// (mi, mn, mo, mtext) contain text only, no element children.
func readTokenText(dec *xml.Decoder, name xml.Name) (string, error) {
	var text string
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return "", &ParseError{Kind: UnexpectedEndOfInput, Offset: int(dec.InputOffset())}
			}
			return "", &ParseError{Kind: XmlError, Offset: int(dec.InputOffset()), Wrapped: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			decoded, err := decodeEntities(string(t), int(dec.InputOffset()))
			if err != nil {
				return "", err
			}
			text += decoded
		case xml.EndElement:
			if t.Name.Local != name.Local {
				return "", &ParseError{Kind: WrongEndElement, Offset: int(dec.InputOffset()), Detail: t.Name.Local}
			}
			return text, nil
		case xml.StartElement:
			return "", &ParseError{Kind: UnknownElement, Offset: int(dec.InputOffset()), Detail: t.Name.Local}
		}
	}
}

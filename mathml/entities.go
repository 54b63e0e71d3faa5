package mathml

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// decodeEntity resolves a `&name;` reference (name without the surrounding
// `&`/`;`) to its replacement text. Named entities are looked up in
// golang.org/x/net/html's generated HTML5 entity tables, which cover the
// MathML-relevant named entities (e.g. ForAll, int, angle) since MathML's
// entity set is a subset of HTML5's. Numeric references (`#100`, `#x64`)
// are decoded directly.
func decodeEntity(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if name[0] == '#' {
		return decodeNumericEntity(name[1:])
	}
	if r, ok := html.Entity[name]; ok {
		return string(r), true
	}
	if pair, ok := html.EntityII[name]; ok {
		return string(pair[0]) + string(pair[1]), true
	}
	return "", false
}

func decodeNumericEntity(digits string) (string, bool) {
	base := 10
	if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
		base = 16
		digits = digits[1:]
	}
	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil || v < 0 || v > 0x10FFFF {
		return "", false
	}
	return string(rune(v)), true
}

// decodeEntities expands every `&name;`/`&#...;` reference in text,
// returning ParseError.UnknownEntity (wrapped with the offending name) on
// the first unresolved reference.
func decodeEntities(text string, baseOffset int) (string, error) {
	if !strings.ContainsRune(text, '&') {
		return text, nil
	}
	var b strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '&' {
			b.WriteByte(c)
			i++
			continue
		}
		end := strings.IndexByte(text[i:], ';')
		if end < 0 {
			return "", &ParseError{Kind: BadEntity, Offset: baseOffset + i, Detail: text[i:]}
		}
		name := text[i+1 : i+end]
		decoded, ok := decodeEntity(name)
		if !ok {
			return "", &ParseError{Kind: UnknownEntity, Offset: baseOffset + i, Detail: name}
		}
		b.WriteString(decoded)
		i += end + 1
	}
	return b.String(), nil
}

package mathml

import "encoding/xml"

// attrSet is a small convenience wrapper over an element's raw attribute
// list, keyed by local name (namespace prefixes on MathML attributes are
// not part of this subset).
type attrSet map[string]string

func parseAttrs(raw []xml.Attr) attrSet {
	m := make(attrSet, len(raw))
	for _, a := range raw {
		m[a.Name.Local] = a.Value
	}
	return m
}

func (a attrSet) str(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

package xhtmlparser

// Attribute is a borrowed, non-owning handle into a Document's
// attribute arena.
type Attribute struct {
	doc *Document
	idx attrIdx
}

// Valid reports whether a refers to an actual attribute.
func (a Attribute) Valid() bool {
	return a.doc != nil && a.idx != noneAttr
}

func (a Attribute) record() *attrRecord {
	return a.doc.attrs.get(a.idx)
}

// Name returns the attribute's name (namespace-stripped if that
// build option was selected).
func (a Attribute) Name() string {
	if !a.Valid() {
		return ""
	}
	return a.record().name.str(a.doc.buf)
}

// Value returns the attribute's normalized value.
func (a Attribute) Value() string {
	if !a.Valid() {
		return ""
	}
	return a.record().value.str(a.doc.buf)
}

// Is reports whether a is named name.
func (a Attribute) Is(name string) bool {
	return a.Valid() && a.Name() == name
}

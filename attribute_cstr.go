//go:build use_cstr

package xhtmlparser

// NameCStr returns a NUL-terminated view of the attribute's name.
func (a Attribute) NameCStr() []byte {
	if !a.Valid() {
		return nil
	}
	return a.record().name.cstr(a.doc.buf)
}

// ValueCStr returns a NUL-terminated view of the attribute's value.
func (a Attribute) ValueCStr() []byte {
	if !a.Valid() {
		return nil
	}
	return a.record().value.cstr(a.doc.buf)
}

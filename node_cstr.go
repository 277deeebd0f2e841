//go:build use_cstr

package xhtmlparser

// NameCStr returns a NUL-terminated view of the element's name --
// available only under the "use_cstr" build tag, per §4.6: "when the
// CStr encoding is active, name and value accessors additionally
// expose NUL-terminated views." The returned slice includes the
// trailing 0x00 and aliases the source buffer; it must not be
// retained past the Document's lifetime.
func (n Node) NameCStr() []byte {
	if !n.Valid() || n.record().typ != nodeElement {
		return nil
	}
	return n.record().name.cstr(n.doc.buf)
}

// TextCStr returns a NUL-terminated view of a PCData node's text.
func (n Node) TextCStr() []byte {
	if !n.Valid() || n.record().typ != nodePCData {
		return nil
	}
	return n.record().text.cstr(n.doc.buf)
}

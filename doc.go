// Package xhtmlparser is a non-validating, read-only XML/XHTML parser
// for memory-constrained environments such as EPUB readers on embedded
// devices. It takes ownership of a single byte buffer, rewrites it in
// place while scanning (entity expansion and whitespace collapsing
// only ever shrink a span), and populates two preallocated arenas —
// one for nodes, one for attributes — so the resulting Document can be
// walked with no further per-node allocation.
//
// Parsing consumes the buffer in a single pass and never mutates the
// tree afterward; there is no serialization back to XML and no
// streaming interface. Feature selection (namespace stripping, entity
// expansion, whitespace handling, string-range encoding, arena index
// width, backward navigation, maximum input size) is fixed at build
// time through Go build tags — see the package-level constants in
// internal/buildopts and the index*.go / stringrange*.go /
// navigation*.go / maxsize*.go files in this package for the toggles
// that affect tree layout directly.
package xhtmlparser

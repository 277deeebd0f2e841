package xhtmlparser

// NodeType discriminates the three node variants a Document can hold.
type NodeType uint8

const (
	// DocumentNode is the type of the single synthetic root at arena
	// index 0.
	DocumentNode NodeType = iota
	ElementNode
	PCDataNode
)

// Node is a borrowed, non-owning handle into a Document's node arena.
// The zero Node is invalid (Valid() reports false), and so is the handle
// every navigation method returns instead of erroring when there is
// nothing on the other end (missing parent, missing sibling), per §7: "Read-
// side operations on a constructed Document never fail."
type Node struct {
	doc *Document
	idx nodeIdx
}

// Valid reports whether n refers to an actual node.
func (n Node) Valid() bool {
	return n.doc != nil && n.idx != noneNode
}

func (n Node) record() *nodeRecord {
	return n.doc.nodes.get(n.idx)
}

// Type reports which variant n is.
func (n Node) Type() NodeType {
	if !n.Valid() {
		return DocumentNode
	}
	switch n.record().typ {
	case nodeElement:
		return ElementNode
	case nodePCData:
		return PCDataNode
	default:
		return DocumentNode
	}
}

// Name returns the element's tag name (already namespace-stripped
// unless the module was built with the "nonsremoval" tag). It returns "" for
// PCData and Document nodes.
func (n Node) Name() string {
	if !n.Valid() || n.record().typ != nodeElement {
		return ""
	}
	return n.record().name.str(n.doc.buf)
}

// Text returns a PCData node's normalized text. It returns "" for
// Element and Document nodes.
func (n Node) Text() string {
	if !n.Valid() || n.record().typ != nodePCData {
		return ""
	}
	return n.record().text.str(n.doc.buf)
}

// Is reports whether n is an Element named name. It compares against
// whatever Name() returns, so it automatically respects the
// namespace_removal build option.
func (n Node) Is(name string) bool {
	return n.Type() == ElementNode && n.Name() == name
}

// FirstChild returns n's first child, or an invalid Node if n has none
// or is not an element.
func (n Node) FirstChild() Node {
	if !n.Valid() || n.record().typ != nodeElement {
		return Node{}
	}
	return Node{doc: n.doc, idx: n.record().firstChild}
}

// NextSibling returns the node immediately after n in its parent's
// child list, or an invalid Node if n is last.
func (n Node) NextSibling() Node {
	if !n.Valid() {
		return Node{}
	}
	return Node{doc: n.doc, idx: n.record().nextSibling}
}

// EachChild walks n's children in source order, stopping early if fn
// returns false.
func (n Node) EachChild(fn func(Node) bool) {
	for c := n.FirstChild(); c.Valid(); c = c.NextSibling() {
		if !fn(c) {
			return
		}
	}
}

// Children materializes n's children into a slice, for callers that
// prefer indexing/ranging over a callback. Prefer EachChild in code
// that can bail out early -- Children always walks the full list.
func (n Node) Children() []Node {
	var out []Node
	n.EachChild(func(c Node) bool {
		out = append(out, c)
		return true
	})
	return out
}

// EachAttribute walks n's attributes in source order, stopping early
// if fn returns false. It is a no-op for non-Element nodes.
func (n Node) EachAttribute(fn func(Attribute) bool) {
	if !n.Valid() || n.record().typ != nodeElement {
		return
	}
	rec := n.record()
	for i := attrIdx(0); i < rec.attrCount; i++ {
		if !fn(Attribute{doc: n.doc, idx: rec.firstAttr + i}) {
			return
		}
	}
}

// Attributes materializes n's attributes into a slice; see Children
// for the same allocate-vs-callback tradeoff.
func (n Node) Attributes() []Attribute {
	var out []Attribute
	n.EachAttribute(func(a Attribute) bool {
		out = append(out, a)
		return true
	})
	return out
}

// Attribute looks up an attribute by name on an Element node, doing a
// linear scan of its (typically small) attribute window -- source
// order is already what callers want, so there's no reason to build a
// map. Absence, like every other read-side query, is reported by a
// bool rather than an error.
func (n Node) Attribute(name string) (Attribute, bool) {
	var found Attribute
	ok := false
	n.EachAttribute(func(a Attribute) bool {
		if a.Is(name) {
			found, ok = a, true
			return false
		}
		return true
	})
	return found, ok
}

// EachDescendant walks the subtree rooted at n in pre-order, including
// n itself, stopping early if fn returns false. Traversal follows
// child/sibling links, not arena adjacency.
func (n Node) EachDescendant(fn func(Node) bool) {
	if !n.Valid() {
		return
	}
	if !fn(n) {
		return
	}
	for c := n.FirstChild(); c.Valid(); c = c.NextSibling() {
		cont := true
		c.EachDescendant(func(d Node) bool {
			cont = fn(d)
			return cont
		})
		if !cont {
			return
		}
	}
}

// Descendants materializes the pre-order subtree rooted at n into a
// slice, n included.
func (n Node) Descendants() []Node {
	var out []Node
	n.EachDescendant(func(d Node) bool {
		out = append(out, d)
		return true
	})
	return out
}

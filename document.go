package xhtmlparser

// Document owns the source buffer and the two arenas populated during
// parsing. It is returned by Parse/Parser.Parse and is safe for
// concurrent reads from multiple goroutines once construction has
// finished -- nothing mutates it afterward.
type Document struct {
	buf   []byte
	nodes nodeArena
	attrs attrArena
	root  nodeIdx
}

// docNode is always node index 0: the synthetic root created before
// parsing begins, per §3's "Document (synthetic root; exactly one per
// tree)".
const docNode nodeIdx = 0

// Root returns the document's single root element, or ErrNoRootElement
// if parsing produced no element (which can only happen if Parse
// somehow returned success with an empty tree; the tokenizer itself
// never returns a *Document in that state, but Root stays defensive).
func (d *Document) Root() (Node, error) {
	if d.root == noneNode {
		return Node{}, newParseError(ErrNoRootElement, len(d.buf), d.buf)
	}
	return Node{doc: d, idx: d.root}, nil
}

// EachNode walks every node in arena (creation) order, including the
// synthetic document node at index 0, stopping early if fn returns
// false.
func (d *Document) EachNode(fn func(Node) bool) {
	for i := 0; i < d.nodes.len(); i++ {
		if !fn(Node{doc: d, idx: nodeIdx(i)}) {
			return
		}
	}
}

// EachDescendant walks every node under the document's root in
// pre-order, following child/sibling links rather than relying on
// arena adjacency (per §3, arena order only happens to match document
// order; sibling chains are what define traversal).
func (d *Document) EachDescendant(fn func(Node) bool) {
	if d.root == noneNode {
		return
	}
	Node{doc: d, idx: d.root}.EachDescendant(fn)
}

// Nodes materializes EachNode's arena-order walk into a slice, for
// callers that prefer indexing/ranging over a callback. Prefer
// EachNode in code that can bail out early -- Nodes always walks the
// full arena.
func (d *Document) Nodes() []Node {
	var out []Node
	d.EachNode(func(n Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Descendants materializes EachDescendant's pre-order walk into a
// slice; see Nodes for the same allocate-vs-callback tradeoff.
func (d *Document) Descendants() []Node {
	var out []Node
	d.EachDescendant(func(n Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

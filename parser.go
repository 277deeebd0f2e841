package xhtmlparser

import (
	"github.com/turgu1/xhtml-parser/internal/stack"
)

// openFrame is one entry of the open-element stack: the element being
// scanned and, since nodeRecord has no last-child field (the arena
// layout matches the data model in §3, which only names first_child
// and next_sibling), a running tail pointer so each new child attaches
// in O(1) instead of walking the sibling chain.
type openFrame struct {
	elem nodeIdx
	tail nodeIdx
}

// Parse parses b and returns the resulting Document, or the first
// parse error encountered. b is owned by the returned Document once
// parsing succeeds: the parser rewrites it in place, and the Document
// must not be used concurrently with any further mutation of b by the
// caller.
func Parse(b []byte) (*Document, error) {
	return NewParser().Parse(b)
}

// Parser holds the scratch state (the open-element stack) that a
// single Parse call needs, so that a caller parsing many documents in
// sequence can reuse one Parser instead of letting that stack's
// backing array be reallocated from scratch every time.
//
// A Parser is not safe for concurrent use: it is a single-writer
// convenience for sequential reuse. Documents it returns are
// independent and safe to read concurrently once returned, same as
// from the package-level Parse.
type Parser struct {
	open stack.Stack[openFrame]
}

// NewParser returns a Parser ready for repeated use.
func NewParser() *Parser {
	return &Parser{}
}

// nodeBytesPerNode and bytesPerAttr are the arena reservation heuristics
// from §9: one node per ~24 input bytes, one attribute per ~96 input
// bytes. Over-reservation wastes memory on embedded targets;
// under-reservation just forces Go's append to grow the backing slice,
// which is allowed but not ideal.
const (
	minArenaCapacity = 8
	nodeBytesPerNode = 24
	bytesPerAttr     = 96
)

func estimateNodeCapacity(bufLen int) int {
	n := bufLen / nodeBytesPerNode
	if n < minArenaCapacity {
		n = minArenaCapacity
	}
	if uint64(n) > maxNodeCount {
		n = int(maxNodeCount)
	}
	return n
}

func estimateAttrCapacity(bufLen int) int {
	n := bufLen / bytesPerAttr
	if n < minArenaCapacity {
		n = minArenaCapacity
	}
	if uint64(n) > maxAttrCount {
		n = int(maxAttrCount)
	}
	return n
}

// Parse parses b against p's reused scratch state.
func (p *Parser) Parse(b []byte) (*Document, error) {
	if uint64(len(b)) > maxXMLSize {
		return nil, newParseError(ErrXmlTooLarge, len(b), b)
	}

	if off, ok := firstInvalidUTF8(b); !ok {
		return nil, newParseError(ErrInvalidUtf8, off, b)
	}

	p.open.Reset()

	doc := &Document{
		buf:   b,
		nodes: newNodeArena(estimateNodeCapacity(len(b))),
		attrs: newAttrArena(estimateAttrCapacity(len(b))),
		root:  noneNode,
	}

	// Index 0 is always the synthetic document node, per docNode.
	if _, err := doc.nodes.append(nodeRecord{
		typ:         nodeDocument,
		firstChild:  noneNode,
		nextSibling: noneNode,
	}); err != nil {
		return nil, newParseError(kindOf(err), 0, b)
	}
	docRec := doc.nodes.get(docNode)
	docRec.setParent(noneNode)
	docRec.setPrevSibling(noneNode)

	c := &parserCtx{buf: b, doc: doc, open: &p.open}
	if err := c.run(); err != nil {
		return nil, err
	}

	return doc, nil
}

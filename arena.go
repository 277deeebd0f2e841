package xhtmlparser

// nodeType discriminates the tagged node variants a Document holds.
type nodeType uint8

const (
	nodeDocument nodeType = iota
	nodeElement
	nodePCData
)

// nodeRecord is one entry of the node arena. Element fields
// (firstAttr/attrCount/firstChild) are meaningless for a PCData node
// and vice versa for text, mirroring the original's single-struct
// tagged-union layout rather than an interface-per-variant scheme --
// the point of the arena is that every node costs exactly sizeof
// (nodeRecord), never an allocation.
//
// nav holds the backward-navigation fields (parent, previous sibling);
// its type is chosen by build tag (navigation_on.go / navigation_off.go)
// so the forward_only build genuinely omits them from the layout
// rather than merely leaving them unused.
type nodeRecord struct {
	typ         nodeType
	name        stringRange // element name; zero value for PCData/Document
	text        stringRange // PCData text; zero value otherwise
	firstAttr   attrIdx
	attrCount   attrIdx
	firstChild  nodeIdx
	nextSibling nodeIdx
	nav         navFields
}

// attrRecord is one entry of the attribute arena.
type attrRecord struct {
	name, value stringRange
}

// nodeArena is the preallocated, append-only vector of node records.
type nodeArena struct {
	recs []nodeRecord
}

func newNodeArena(capacityHint int) nodeArena {
	return nodeArena{recs: make([]nodeRecord, 0, capacityHint)}
}

// append adds rec to the arena, failing with ErrTooManyNodes if doing
// so would exceed the build's index-width capacity.
func (a *nodeArena) append(rec nodeRecord) (nodeIdx, error) {
	if uint64(len(a.recs)) >= maxNodeCount {
		return noneNode, errTooManyNodes
	}
	a.recs = append(a.recs, rec)
	return nodeIdx(len(a.recs) - 1), nil
}

func (a *nodeArena) get(idx nodeIdx) *nodeRecord {
	return &a.recs[idx]
}

func (a *nodeArena) len() int {
	return len(a.recs)
}

// attrArena is the preallocated, append-only vector of attribute
// records.
type attrArena struct {
	recs []attrRecord
}

func newAttrArena(capacityHint int) attrArena {
	return attrArena{recs: make([]attrRecord, 0, capacityHint)}
}

func (a *attrArena) append(rec attrRecord) (attrIdx, error) {
	if uint64(len(a.recs)) >= maxAttrCount {
		return noneAttr, errTooManyAttributes
	}
	a.recs = append(a.recs, rec)
	return attrIdx(len(a.recs) - 1), nil
}

func (a *attrArena) get(idx attrIdx) *attrRecord {
	return &a.recs[idx]
}

func (a *attrArena) len() int {
	return len(a.recs)
}

// errTooManyNodes/errTooManyAttributes are the sentinel errors the
// tokenizer upgrades into a *ParseError once it knows the offending
// byte offset.
var (
	errTooManyNodes      = newSentinel(ErrTooManyNodes)
	errTooManyAttributes = newSentinel(ErrTooManyAttributes)
)

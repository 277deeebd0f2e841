//go:build attridx16 && !attridx64

package xhtmlparser

// attrIdx is the index type into the attribute arena, narrowed to 16
// bits by the "attridx16" build tag.
type attrIdx = uint16

const noneAttr attrIdx = ^attrIdx(0)

const maxAttrCount = uint64(noneAttr)

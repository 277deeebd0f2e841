//go:build attridx64 && !attridx16

package xhtmlparser

// attrIdx is the index type into the attribute arena, widened to 64
// bits by the "attridx64" build tag.
type attrIdx = uint64

const noneAttr attrIdx = ^attrIdx(0)

const maxAttrCount = uint64(noneAttr)

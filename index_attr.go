//go:build !attridx16 && !attridx64

package xhtmlparser

// attrIdx is the index type into the attribute arena. The default
// build uses 32 bits; build with "-tags attridx16" or "-tags
// attridx64" to pick a narrower or wider index.
type attrIdx = uint32

// noneAttr is the sentinel meaning "no attribute" / "zero attributes".
const noneAttr attrIdx = ^attrIdx(0)

const maxAttrCount = uint64(noneAttr)

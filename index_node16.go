//go:build nodeidx16 && !nodeidx64

package xhtmlparser

// nodeIdx is the index type into the node arena, narrowed to 16 bits
// by the "nodeidx16" build tag. A 16-bit node arena can hold at most
// 65535 nodes, indices 0 through 0xFFFE (0xFFFF is reserved as noneNode).
type nodeIdx = uint16

const noneNode nodeIdx = ^nodeIdx(0)

const maxNodeCount = uint64(noneNode)

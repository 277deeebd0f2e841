//go:build nodeidx64 && !nodeidx16

package xhtmlparser

// nodeIdx is the index type into the node arena, widened to 64 bits by
// the "nodeidx64" build tag, for documents whose node count could
// exceed the 32-bit default's reach.
type nodeIdx = uint64

const noneNode nodeIdx = ^nodeIdx(0)

const maxNodeCount = uint64(noneNode)

//go:build !nodeidx16 && !nodeidx64

package xhtmlparser

// nodeIdx is the index type into the node arena. The default build
// uses 32 bits; build with "-tags nodeidx16" or "-tags nodeidx64" to
// pick a narrower or wider index. Exactly one of the three must be
// selected -- picking both nodeidx16 and nodeidx64 is a build error
// (see index_node_conflict.go).
type nodeIdx = uint32

// noneNode is the sentinel meaning "no node" -- the maximum value of
// nodeIdx, which is therefore never a valid arena index.
const noneNode nodeIdx = ^nodeIdx(0)

// maxNodeCount bounds how many nodes the node arena can hold under
// this index width.
const maxNodeCount = uint64(noneNode)

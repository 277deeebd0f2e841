//go:build !maxsize64kib && !maxsizefull

package xhtmlparser

// maxXMLSize bounds the input buffer length accepted by Parse, checked
// once before parsing begins. The default build caps input at 4 GiB,
// matching the reach of the default 32-bit node/attribute indices;
// build with "-tags maxsize64kib" for the smallest embedded targets or
// "-tags maxsizefull" to lift the cap to the full 2^64-1 byte range
// (only useful paired with 64-bit indices -- see index_node64.go /
// index_attr64.go).
const maxXMLSize uint64 = 1 << 32

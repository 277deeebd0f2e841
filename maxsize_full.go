//go:build maxsizefull && !maxsize64kib

package xhtmlparser

// maxXMLSize lifts the input cap to the full byte range a uint64
// length can express.
const maxXMLSize uint64 = 1<<64 - 1

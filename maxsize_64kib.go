//go:build maxsize64kib && !maxsizefull

package xhtmlparser

// maxXMLSize caps input at 64 KiB, for the tightest embedded targets.
const maxXMLSize uint64 = 1 << 16

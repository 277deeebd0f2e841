//go:build !use_cstr

package xhtmlparser

// stringRange locates a substring inside the source buffer as an
// ordered (start, end) byte-offset pair. This is the default
// encoding; build with "-tags use_cstr" to switch to NUL-terminated
// offsets instead (stringrange_cstr.go), which costs one byte in the
// buffer in place of one offset field, at the price of an O(n) scan
// to recover the length.
type stringRange struct {
	start, end uint32
}

// bytes returns the range's bytes out of src.
func (r stringRange) bytes(src []byte) []byte {
	return src[r.start:r.end]
}

// str returns the range's bytes out of src as a string. The string is
// a copy of those bytes.
func (r stringRange) str(src []byte) string {
	return string(r.bytes(src))
}

// len reports the range's length in bytes.
func (r stringRange) len(_ []byte) int {
	return int(r.end - r.start)
}

// finishCapture closes out a captured span [start, write) into a
// stringRange. Under range encoding this is just bookkeeping: no byte
// of buf is touched, and the write cursor does not move.
func finishCapture(buf []byte, start, write int) (stringRange, int) {
	return stringRange{start: uint32(start), end: uint32(write)}, write
}

//go:build use_cstr

package xhtmlparser

import "bytes"

// stringRange locates a NUL-terminated run in the source buffer by its
// start offset alone, selected by the "use_cstr" build tag. The
// terminating 0x00 is written into the buffer by finishCapture, taking
// the place of the delimiter byte (closing quote, or the whitespace/'<'
// that ends a PCData run) that range encoding would otherwise just
// leave untouched -- that delimiter is never part of the captured
// content, so overwriting it costs nothing extra as long as the write
// cursor has at least one byte of slack there, which it always does:
// read is strictly past the delimiter by the time a capture closes,
// and write <= read is the parser's standing invariant.
type stringRange struct {
	start uint32
}

// bytes returns the range's bytes out of src, scanning forward to the
// NUL terminator.
func (r stringRange) bytes(src []byte) []byte {
	rest := src[r.start:]
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		return rest[:i]
	}
	return rest
}

// str returns the range's bytes out of src as a string.
func (r stringRange) str(src []byte) string {
	return string(r.bytes(src))
}

// cstr returns a NUL-terminated view of the range, i.e. the bytes up
// to and including the terminator -- the encoding this build exists
// for.
func (r stringRange) cstr(src []byte) []byte {
	rest := src[r.start:]
	if i := bytes.IndexByte(rest, 0); i >= 0 {
		return rest[:i+1]
	}
	return rest
}

// len reports the range's length in bytes, excluding the terminator.
func (r stringRange) len(src []byte) int {
	return len(r.bytes(src))
}

// finishCapture closes out a captured span [start, write) into a
// stringRange, writing the NUL terminator at buf[write] and returning
// write+1 as the new write cursor so later captures don't clobber it.
func finishCapture(buf []byte, start, write int) (stringRange, int) {
	buf[write] = 0
	return stringRange{start: uint32(start)}, write + 1
}

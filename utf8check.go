package xhtmlparser

import "unicode/utf8"

// firstInvalidUTF8 reports the byte offset of the first malformed
// UTF-8 sequence in b, if any. Parse runs this once up front rather
// than re-checking every captured range during the scan: the parser's
// own in-place rewrites (entity expansion, whitespace collapsing)
// only ever copy bytes it already read, so a buffer that was valid
// UTF-8 at the start of parsing stays valid UTF-8 throughout -- this
// is the one place ErrInvalidUtf8 (§7) can actually be detected,
// grounded on the byte-offset-tracking style of ubs121/encoding/xml's
// line-oriented scanner.
func firstInvalidUTF8(b []byte) (offset int, ok bool) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}

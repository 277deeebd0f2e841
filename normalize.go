package xhtmlparser

import "github.com/turgu1/xhtml-parser/internal/buildopts"

// normalizeAttrValue scans buf starting at start (the byte right after
// the opening quote) for the matching quote byte, rewriting the value
// in place as it goes: runs of whitespace collapse to a single 0x20,
// leading/trailing whitespace is dropped, and -- when the
// "noescapes" build tag is not set -- "&...;" references expand to
// their UTF-8 bytes. It returns the captured range and the offset of
// the closing quote itself (the caller advances past that quote).
//
// read and write start at the same offset and read never falls behind
// write, so every byte the normalizer produces has already been
// consumed from the input: the rewrite can never catch up with and
// corrupt content the scanner hasn't read yet.
func normalizeAttrValue(buf []byte, start int, quote byte) (stringRange, int, error) {
	read := start
	write := start
	lastWasSpace := true // treat the start as if preceded by space, to drop leading ws

	for read < len(buf) {
		c := buf[read]

		// isAttrStop is the fast path: most bytes in an attribute
		// value are ordinary content and copy straight through. Only
		// a byte in that class (quote, apostrophe, '<', '&') -- or
		// whitespace, its own class -- needs the slower, exact check
		// below to decide which of them it actually is.
		if !isAttrStop(c) && !isWhitespace(c) {
			buf[write] = c
			write++
			read++
			lastWasSpace = false
			continue
		}

		switch {
		case c == quote:
			// Trim a single trailing space we may have just collapsed in.
			if write > start && buf[write-1] == ' ' && lastWasSpace {
				write--
			}
			sr, _ := finishCapture(buf, start, write)
			return sr, read, nil
		case c == '<':
			return stringRange{}, read, newSentinel(ErrInvalidChar)
		case isWhitespace(c):
			if !lastWasSpace {
				buf[write] = ' '
				write++
			}
			lastWasSpace = true
			read++
		case c == '&':
			if !buildopts.ParseEscapes {
				buf[write] = c
				write++
				read++
				lastWasSpace = false
				continue
			}
			body, semi, ok := findEntityBody(buf, read+1)
			if !ok {
				return stringRange{}, read, newSentinel(ErrMalformedEntity)
			}
			expanded, err := resolveEntity(buf[write:write], body)
			if err != nil {
				return stringRange{}, read, err
			}
			write += copy(buf[write:], expanded)
			read = semi + 1
			lastWasSpace = false
		default:
			// isAttrStop flagged this byte (the quote character that
			// isn't this value's own delimiter) but it isn't actually
			// special here -- ordinary content.
			buf[write] = c
			write++
			read++
			lastWasSpace = false
		}
	}

	return stringRange{}, read, newSentinel(ErrUnterminatedAttributeValue)
}

// normalizePCData scans buf starting at start for the next '<' (the
// only thing that can end a text run), rewriting in place as it goes:
// a lone '\r' becomes '\n', "\r\n" becomes '\n', and -- unless
// "noescapes" was selected -- "&...;" expands. It returns the
// captured range and the offset of the '<' that stopped the scan.
func normalizePCData(buf []byte, start int) (stringRange, int, error) {
	read := start
	write := start

	for read < len(buf) {
		c := buf[read]

		// isPcdStop gates the three bytes that ever need special
		// handling in PCData ('<', '\r', '&'); everything else is
		// ordinary content and copies straight through without ever
		// reaching the switch below.
		if !isPcdStop(c) {
			buf[write] = c
			write++
			read++
			continue
		}

		switch c {
		case '<':
			start, write = trimPCData(buf, start, write)
			sr, _ := finishCapture(buf, start, write)
			return sr, read, nil
		case '\r':
			buf[write] = '\n'
			write++
			read++
			if read < len(buf) && buf[read] == '\n' {
				read++
			}
		case '&':
			if !buildopts.ParseEscapes {
				buf[write] = c
				write++
				read++
				continue
			}
			body, semi, ok := findEntityBody(buf, read+1)
			if !ok {
				return stringRange{}, read, newSentinel(ErrMalformedEntity)
			}
			expanded, err := resolveEntity(buf[write:write], body)
			if err != nil {
				return stringRange{}, read, err
			}
			write += copy(buf[write:], expanded)
			read = semi + 1
		}
	}

	return stringRange{}, read, newSentinel(ErrUnexpectedEof)
}

// trimPCData drops leading/trailing whitespace from [start, write) when
// the "trimpcdata" build tag is set; otherwise it returns its
// arguments unchanged.
func trimPCData(buf []byte, start, write int) (int, int) {
	if !buildopts.TrimPCData {
		return start, write
	}
	for start < write && isWhitespace(buf[start]) {
		start++
	}
	for write > start && isWhitespace(buf[write-1]) {
		write--
	}
	return start, write
}

// isWhitespaceOnly reports whether a captured span is entirely
// whitespace (or empty), used to decide whether to emit a PCData node
// at all under the keep_ws_only_pcdata option.
func isWhitespaceOnly(buf []byte, sr stringRange) bool {
	b := sr.bytes(buf)
	for _, c := range b {
		if !isWhitespace(c) {
			return false
		}
	}
	return true
}

// findEntityBody locates the ';' terminating an entity reference that
// started right after '&' at from, within a short bounded window (the
// longest legal reference, a named XHTML entity, is nowhere near this
// long) so a missing ';' fails fast with MalformedEntity instead of
// scanning to the end of the document.
const maxEntityLookahead = 64

func findEntityBody(buf []byte, from int) (body []byte, semi int, ok bool) {
	limit := from + maxEntityLookahead
	if limit > len(buf) {
		limit = len(buf)
	}
	for i := from; i < limit; i++ {
		if buf[i] == ';' {
			return buf[from:i], i, true
		}
		if buf[i] == '<' || buf[i] == '&' {
			break
		}
	}
	return nil, 0, false
}

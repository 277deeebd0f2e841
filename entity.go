package xhtmlparser

import (
	"unicode/utf8"
)

// namedEntities holds the five standard XML entities plus the XHTML
// named-entity set (the "lat1", "symbol", and "special" modules of the
// XHTML character-entity DTDs), each mapped directly to its UTF-8
// expansion. The original parser this is grounded on builds this table
// as a compile-time perfect hash; Go has no equivalent code-generation
// step in this pack's idiom (robfordww/runxml and ubs121/encoding/xml
// both resolve entities with a plain switch/map at runtime too), so a
// map populated once by init() stands in for it -- see DESIGN.md.
var namedEntities map[string]string

func init() {
	namedEntities = make(map[string]string, len(xhtmlNamedEntities)+5)
	namedEntities["amp"] = "&"
	namedEntities["lt"] = "<"
	namedEntities["gt"] = ">"
	namedEntities["apos"] = "'"
	namedEntities["quot"] = "\""
	for name, r := range xhtmlNamedEntities {
		namedEntities[name] = string(r)
	}
}

// resolveEntity decodes the entity reference body in b (the bytes
// strictly between '&' and the terminating ';', ';' excluded) and
// appends its UTF-8 expansion to dst, returning the extended slice.
// It never allocates beyond what append needs.
func resolveEntity(dst, b []byte) ([]byte, error) {
	if len(b) == 0 {
		return dst, errUnknownEntity
	}

	if b[0] == '#' {
		return resolveNumericEntity(dst, b[1:])
	}

	if s, ok := namedEntities[string(b)]; ok {
		return append(dst, s...), nil
	}

	return dst, errUnknownEntity
}

// resolveNumericEntity decodes "N" (decimal) or "xH"/"XH" (hex) into
// its UTF-8 code point, appended to dst.
func resolveNumericEntity(dst, b []byte) ([]byte, error) {
	if len(b) == 0 {
		return dst, errMalformedEntity
	}

	var cp uint32
	if b[0] == 'x' || b[0] == 'X' {
		b = b[1:]
		if len(b) == 0 {
			return dst, errMalformedEntity
		}
		for _, c := range b {
			v, ok := hexDigit(c)
			if !ok {
				return dst, errMalformedEntity
			}
			cp = cp*16 + uint32(v)
			if cp > utf8.MaxRune {
				return dst, errMalformedEntity
			}
		}
	} else {
		for _, c := range b {
			if c < '0' || c > '9' {
				return dst, errMalformedEntity
			}
			cp = cp*10 + uint32(c-'0')
			if cp > utf8.MaxRune {
				return dst, errMalformedEntity
			}
		}
	}

	r := rune(cp)
	if !utf8.ValidRune(r) {
		// Surrogate halves and values beyond 0x10FFFF land here.
		return dst, errMalformedEntity
	}

	return utf8.AppendRune(dst, r), nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

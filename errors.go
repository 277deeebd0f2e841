package xhtmlparser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lestrrat-go/strcursor"
)

// sentinelError lets low-level helpers (the entity resolver, the
// arenas) fail with a specific ErrorKind before a byte offset is
// known. The tokenizer recovers the kind with errors.As and upgrades
// it into a *ParseError once it has one.
type sentinelError struct{ kind ErrorKind }

func (e sentinelError) Error() string { return e.kind.String() }

func newSentinel(kind ErrorKind) error { return sentinelError{kind: kind} }

// kindOf recovers the ErrorKind carried by a sentinel error, or
// ErrInvalidChar as a fallback for errors that aren't one of ours
// (this should never actually happen given how the tokenizer is
// wired, but a fallback is cheaper than a panic).
func kindOf(err error) ErrorKind {
	var se sentinelError
	if errors.As(err, &se) {
		return se.kind
	}
	return ErrInvalidChar
}

// ErrorKind is the closed set of parse-failure kinds this parser can
// report. New kinds are never added without a corresponding spec
// change -- callers are expected to switch over it exhaustively.
type ErrorKind int

const (
	ErrXmlTooLarge ErrorKind = iota + 1
	ErrTooManyNodes
	ErrTooManyAttributes
	ErrUnexpectedEof
	ErrInvalidUtf8
	ErrInvalidChar
	ErrMismatchedTag
	ErrUnterminatedAttributeValue
	ErrMissingEquals
	ErrUnquotedAttributeValue
	ErrMalformedEntity
	ErrUnknownEntity
	ErrNoRootElement
	ErrMalformedComment
	ErrMalformedCdata
	ErrMalformedDoctype
)

func (k ErrorKind) String() string {
	switch k {
	case ErrXmlTooLarge:
		return "input exceeds the configured maximum size"
	case ErrTooManyNodes:
		return "node arena capacity exceeded"
	case ErrTooManyAttributes:
		return "attribute arena capacity exceeded"
	case ErrUnexpectedEof:
		return "unexpected end of input"
	case ErrInvalidUtf8:
		return "invalid UTF-8"
	case ErrInvalidChar:
		return "invalid character"
	case ErrMismatchedTag:
		return "mismatched closing tag"
	case ErrUnterminatedAttributeValue:
		return "unterminated attribute value"
	case ErrMissingEquals:
		return "missing '=' in attribute"
	case ErrUnquotedAttributeValue:
		return "attribute value is not quoted"
	case ErrMalformedEntity:
		return "malformed entity reference"
	case ErrUnknownEntity:
		return "unknown entity reference"
	case ErrNoRootElement:
		return "document has no root element"
	case ErrMalformedComment:
		return "malformed comment"
	case ErrMalformedCdata:
		return "malformed CDATA section"
	case ErrMalformedDoctype:
		return "malformed DOCTYPE"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parse (and Parser.Parse) on the first
// failure encountered; parsing always aborts at that point. It carries
// the byte offset of the failure and is decorated, at Error() time,
// with line/column/source-line context the way
// lestrrat-go/helium's ErrParseError is -- using
// github.com/lestrrat-go/strcursor to walk the buffer from the start
// up to offset purely to compute those display coordinates. This walk
// never mutates the buffer; it is unrelated to the parser's own
// read/write cursor pair, which strcursor's API has no way to express.
type ParseError struct {
	kind   ErrorKind
	offset int
	source []byte
}

// Kind reports which of the closed ErrorKind values this failure is.
func (e *ParseError) Kind() ErrorKind { return e.kind }

// Offset reports the byte offset in the source buffer at which the
// failure was detected.
func (e *ParseError) Offset() int { return e.offset }

func (e *ParseError) Error() string {
	if e.source == nil || e.offset > len(e.source) {
		return fmt.Sprintf("%s at byte offset %d", e.kind, e.offset)
	}

	cur := strcursor.NewByteCursor(bytes.NewReader(e.source))
	cur.Advance(e.offset)

	return fmt.Sprintf(
		"%s at line %d, column %d (byte offset %d)\n -> '%s' <-- around here",
		e.kind,
		cur.LineNumber(),
		cur.Column(),
		e.offset,
		cur.Line(),
	)
}

func newParseError(kind ErrorKind, offset int, source []byte) *ParseError {
	return &ParseError{kind: kind, offset: offset, source: source}
}

// Sentinel errors for the entity resolver, which operates below the
// parserCtx and doesn't have a byte offset or source buffer handy at
// the point of failure; the tokenizer wraps these into a *ParseError
// once it knows the offset of the '&' that started the reference.
var (
	errUnknownEntity   = newSentinel(ErrUnknownEntity)
	errMalformedEntity = newSentinel(ErrMalformedEntity)
)

package xhtmlparser

import (
	"bytes"

	"github.com/turgu1/xhtml-parser/internal/buildopts"
	"github.com/turgu1/xhtml-parser/internal/debug"
	"github.com/turgu1/xhtml-parser/internal/stack"
)

// parserCtx is the scratch state a single Parse call needs beyond the
// Document being built: a read cursor into the owned buffer and the
// open-element stack it shares with its Parser. It is grounded on the
// cursor-plus-state-table shape of lestrrat-go/helium's parserCtx,
// generalized from that table's "instate" dispatch to the byte-offset
// cursor the data model in §3 calls for.
type parserCtx struct {
	buf []byte
	pos int

	doc  *Document
	open *stack.Stack[openFrame]

	// docFrame stands in for the stack frame the document node would
	// have if it were pushed like every other open element: the root
	// element attaches to it exactly the way a nested child attaches
	// to its parent's frame.
	docFrame openFrame
}

func (c *parserCtx) fail(kind ErrorKind) error {
	return newParseError(kind, c.pos, c.buf)
}

func (c *parserCtx) failAt(kind ErrorKind, offset int) error {
	return newParseError(kind, offset, c.buf)
}

func (c *parserCtx) hasPrefix(s string) bool {
	end := c.pos + len(s)
	return end <= len(c.buf) && string(c.buf[c.pos:end]) == s
}

func indexOf(buf []byte, from int, sep string) int {
	if from > len(buf) {
		return -1
	}
	i := bytes.Index(buf[from:], []byte(sep))
	if i < 0 {
		return -1
	}
	return from + i
}

// run drives the whole Prologue -> ... -> Done state table of §4.4
// against c.buf, starting at c.pos == 0 and populating c.doc as it
// goes. The open-element stack, not recursion, carries "whose content
// am I scanning" across nested elements, so this is a flat loop rather
// than a tree-walking parser.
func (c *parserCtx) run() error {
	debug.Printf("START parserCtx.run")

	c.docFrame = openFrame{elem: docNode, tail: noneNode}

	if err := c.prologue(); err != nil {
		return err
	}

	if err := c.openElement(&c.docFrame); err != nil {
		return err
	}

	for c.open.Len() > 0 {
		if err := c.parseContent(); err != nil {
			return err
		}
	}

	debug.Printf("END   parserCtx.run")
	return nil
}

// prologue consumes everything before the root element's "<": an
// optional BOM, whitespace, and any number of comments/PIs/DOCTYPE,
// per the Prologue row of §4.4's state table. It stops the instant it
// finds a '<' that starts a name, leaving c.pos there for openElement.
func (c *parserCtx) prologue() error {
	c.skipBOM()

	for {
		c.skipWhitespace()

		if c.pos >= len(c.buf) {
			// Lexically clean EOF with nothing resembling a root --
			// there is no unclosed construct to blame, so this isn't
			// UnexpectedEof; it's the same "no element was produced"
			// failure Document.Root returns post-parse.
			return c.fail(ErrNoRootElement)
		}

		switch {
		case c.hasPrefix("<!--"):
			if err := c.skipComment(); err != nil {
				return err
			}
		case c.hasPrefix("<!DOCTYPE"):
			if err := c.skipDoctype(); err != nil {
				return err
			}
		case c.hasPrefix("<?"):
			if err := c.skipPI(); err != nil {
				return err
			}
		case c.buf[c.pos] == '<' && c.pos+1 < len(c.buf) && isNameStart(c.buf[c.pos+1]):
			return nil
		default:
			return c.fail(ErrInvalidChar)
		}
	}
}

func (c *parserCtx) skipBOM() {
	if len(c.buf) >= 3 && c.buf[0] == 0xEF && c.buf[1] == 0xBB && c.buf[2] == 0xBF {
		c.pos = 3
	}
}

func (c *parserCtx) skipWhitespace() {
	for c.pos < len(c.buf) && isWhitespace(c.buf[c.pos]) {
		c.pos++
	}
}

func (c *parserCtx) skipComment() error {
	start := c.pos
	c.pos += len("<!--")
	end := indexOf(c.buf, c.pos, "-->")
	if end < 0 {
		return c.failAt(ErrMalformedComment, start)
	}
	c.pos = end + len("-->")
	return nil
}

func (c *parserCtx) skipPI() error {
	start := c.pos
	c.pos += len("<?")
	end := indexOf(c.buf, c.pos, "?>")
	if end < 0 {
		return c.failAt(ErrUnexpectedEof, start)
	}
	c.pos = end + len("?>")
	return nil
}

// skipDoctype scans "<!DOCTYPE" balanced to its matching '>', counting
// '[' ... ']' internal-subset brackets: a '>' inside the subset (bracket
// depth above 0) is skipped, and only a '>' at depth 0 ends the
// declaration. Nothing inside the subset is interpreted.
func (c *parserCtx) skipDoctype() error {
	start := c.pos
	c.pos += len("<!DOCTYPE")

	depth := 0
	for c.pos < len(c.buf) {
		switch c.buf[c.pos] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				c.pos++
				return nil
			}
		}
		c.pos++
	}
	return c.failAt(ErrMalformedDoctype, start)
}

// parseContent processes exactly one content item -- a text run or a
// single markup construct -- of the element on top of the open-element
// stack. The run loop calls it repeatedly until that stack empties.
func (c *parserCtx) parseContent() error {
	top := c.open.Top()

	if c.pos >= len(c.buf) {
		return c.fail(ErrUnexpectedEof)
	}

	if c.buf[c.pos] != '<' {
		return c.parseText(top)
	}
	return c.parseMarkup(top)
}

func (c *parserCtx) parseMarkup(top *openFrame) error {
	switch {
	case c.hasPrefix("<!--"):
		return c.skipComment()
	case c.hasPrefix("<![CDATA["):
		return c.parseCDATA(top)
	case c.hasPrefix("<!DOCTYPE"):
		return c.skipDoctype()
	case c.hasPrefix("<?"):
		return c.skipPI()
	case c.hasPrefix("</"):
		return c.closeElement(top)
	case c.pos+1 < len(c.buf) && isNameStart(c.buf[c.pos+1]):
		return c.openElement(top)
	default:
		return c.fail(ErrInvalidChar)
	}
}

// parseText normalizes one PCData run starting at c.pos (which is not
// '<', guaranteed by the caller) and emits a node for it unless the
// keep_ws_only_pcdata policy in shouldEmitPCData says to drop it.
func (c *parserCtx) parseText(top *openFrame) error {
	sr, endPos, err := normalizePCData(c.buf, c.pos)
	if err != nil {
		return c.failAt(kindOf(err), endPos)
	}
	c.pos = endPos

	if c.shouldEmitPCData(sr) {
		idx, aerr := c.doc.nodes.append(nodeRecord{typ: nodePCData, text: sr})
		if aerr != nil {
			return c.failAt(kindOf(aerr), c.pos)
		}
		c.attach(top, idx)
	}

	return nil
}

// shouldEmitPCData decides whether a captured PCData span becomes a
// node, per §4.3/§4.4 and the open question in §9: whitespace-only
// text is always dropped before the root opens (prologue whitespace
// never reaches here at all), and after the root opens it is dropped
// unless keep_ws_only_pcdata was selected.
func (c *parserCtx) shouldEmitPCData(sr stringRange) bool {
	if !isWhitespaceOnly(c.buf, sr) {
		return true
	}
	return buildopts.KeepWSOnlyPCData && c.doc.root != noneNode
}

// parseCDATA copies a "<![CDATA[" ... "]]>" body verbatim into a
// PCData node, per §4.4: no normalization, no entity expansion.
func (c *parserCtx) parseCDATA(top *openFrame) error {
	start := c.pos
	bodyStart := start + len("<![CDATA[")
	end := indexOf(c.buf, bodyStart, "]]>")
	if end < 0 {
		return c.failAt(ErrMalformedCdata, start)
	}

	sr, _ := finishCapture(c.buf, bodyStart, end)
	c.pos = end + len("]]>")

	idx, err := c.doc.nodes.append(nodeRecord{typ: nodePCData, text: sr})
	if err != nil {
		return c.failAt(kindOf(err), c.pos)
	}
	c.attach(top, idx)
	return nil
}

// readName scans an XML Name starting at c.pos (which must satisfy
// isNameStart) and returns its captured range along with the byte
// immediately following it, or 0 at EOF.
//
// Callers must branch on that returned delimiter instead of
// re-reading c.buf at its position: under the use_cstr build,
// finishCapture overwrites that exact byte with the name's NUL
// terminator, so by the time the caller could look again the original
// delimiter is gone. Every byte beyond that single position is always
// untouched.
func (c *parserCtx) readName() (stringRange, byte, error) {
	start := c.pos
	if start >= len(c.buf) || !isNameStart(c.buf[start]) {
		return stringRange{}, 0, c.fail(ErrInvalidChar)
	}

	end := start + 1
	for end < len(c.buf) && isNameCont(c.buf[end]) {
		end++
	}

	nameStart := start
	if buildopts.NamespaceRemoval {
		for i := start; i < end; i++ {
			if c.buf[i] == ':' {
				nameStart = i + 1
				break
			}
		}
	}

	var delim byte
	if end < len(c.buf) {
		delim = c.buf[end]
	}

	sr, _ := finishCapture(c.buf, nameStart, end)
	c.pos = end
	return sr, delim, nil
}

// openElement reads "<Name" (c.pos already on the '<'), emits the
// element node, attaches it to top (the parent frame -- the
// document's own frame for the root), pushes a fresh frame for it, and
// then consumes its attributes and tag terminator via readAttrs.
func (c *parserCtx) openElement(top *openFrame) error {
	start := c.pos
	c.pos++ // consume '<'

	name, delim, err := c.readName()
	if err != nil {
		return err
	}
	if c.pos >= len(c.buf) {
		return c.fail(ErrUnexpectedEof)
	}

	firstAttr := attrIdx(c.doc.attrs.len())
	idx, err := c.doc.nodes.append(nodeRecord{
		typ:        nodeElement,
		name:       name,
		firstAttr:  firstAttr,
		firstChild: noneNode,
	})
	if err != nil {
		return c.failAt(kindOf(err), start)
	}

	c.attach(top, idx)
	if top.elem == docNode {
		c.doc.root = idx
	}

	c.open.Push(openFrame{elem: idx, tail: noneNode})

	selfClosed, err := c.readAttrs(idx, delim)
	if err != nil {
		return err
	}
	if selfClosed {
		c.open.Pop()
	}
	return nil
}

// readAttrs consumes "ReadAttrName"/"ReadAttrEq"/"ReadAttrValue" in a
// loop until it sees '>' or "/>", appending an attribute record for
// each name="value" pair it parses. pending is the delimiter byte
// readName returned right after the element name -- the first
// character readAttrs must look at -- since that position cannot be
// safely re-read from c.buf under the use_cstr build.
func (c *parserCtx) readAttrs(elemIdx nodeIdx, pending byte) (bool, error) {
	b := pending
	fresh := false

	for {
		if fresh {
			if c.pos >= len(c.buf) {
				return false, c.fail(ErrUnexpectedEof)
			}
			b = c.buf[c.pos]
		}
		fresh = true

		switch {
		case isWhitespace(b):
			c.pos++
			c.skipWhitespace()
		case b == '>':
			c.pos++
			return false, nil
		case b == '/':
			c.pos++
			if c.pos >= len(c.buf) || c.buf[c.pos] != '>' {
				return false, c.fail(ErrInvalidChar)
			}
			c.pos++
			return true, nil
		case isNameStart(b):
			if err := c.readAttr(elemIdx); err != nil {
				return false, err
			}
		default:
			return false, c.fail(ErrInvalidChar)
		}
	}
}

// readAttr parses one Name '=' Quoted-Value pair and appends it to the
// attribute arena, bumping elemIdx's attrCount. c.pos must already be
// on the attribute name's first byte.
func (c *parserCtx) readAttr(elemIdx nodeIdx) error {
	name, delim, err := c.readName()
	if err != nil {
		return err
	}
	if c.pos >= len(c.buf) {
		return c.fail(ErrUnexpectedEof)
	}

	switch {
	case delim == '=':
		c.pos++
	case isWhitespace(delim):
		c.pos++
		c.skipWhitespace()
		if c.pos >= len(c.buf) || c.buf[c.pos] != '=' {
			return c.fail(ErrMissingEquals)
		}
		c.pos++
	default:
		return c.fail(ErrMissingEquals)
	}

	c.skipWhitespace()
	if c.pos >= len(c.buf) {
		return c.fail(ErrUnexpectedEof)
	}

	quote := c.buf[c.pos]
	if quote != '"' && quote != '\'' {
		return c.fail(ErrUnquotedAttributeValue)
	}
	c.pos++

	value, endPos, verr := normalizeAttrValue(c.buf, c.pos, quote)
	if verr != nil {
		return c.failAt(kindOf(verr), endPos)
	}
	c.pos = endPos + 1 // consume the closing quote

	if _, aerr := c.doc.attrs.append(attrRecord{name: name, value: value}); aerr != nil {
		return c.failAt(kindOf(aerr), c.pos)
	}
	c.doc.nodes.get(elemIdx).attrCount++
	return nil
}

// closeElement reads "</Name>" (c.pos already on the first '<'),
// checks the name against top -- the element the open-element stack
// says should be closing -- and pops it on a match.
func (c *parserCtx) closeElement(top *openFrame) error {
	start := c.pos
	c.pos += 2 // consume "</"

	name, delim, err := c.readName()
	if err != nil {
		return err
	}
	if c.pos >= len(c.buf) {
		return c.fail(ErrUnexpectedEof)
	}

	switch {
	case delim == '>':
		c.pos++
	case isWhitespace(delim):
		c.pos++
		c.skipWhitespace()
		if c.pos >= len(c.buf) || c.buf[c.pos] != '>' {
			return c.fail(ErrInvalidChar)
		}
		c.pos++
	default:
		return c.fail(ErrInvalidChar)
	}

	openName := c.doc.nodes.get(top.elem).name.str(c.buf)
	if name.str(c.buf) != openName {
		return c.failAt(ErrMismatchedTag, start)
	}

	c.open.Pop()
	return nil
}

// attach links child onto the end of top's child list -- top's own
// firstChild if it has none yet, otherwise top's running tail's
// nextSibling -- and updates top.tail. It also sets the backward-
// navigation fields when they exist (setParent/setPrevSibling are
// no-ops under the forward_only build).
func (c *parserCtx) attach(top *openFrame, child nodeIdx) {
	rec := c.doc.nodes.get(child)
	rec.nextSibling = noneNode
	rec.setParent(top.elem)

	if top.tail == noneNode {
		c.doc.nodes.get(top.elem).firstChild = child
		rec.setPrevSibling(noneNode)
	} else {
		c.doc.nodes.get(top.tail).nextSibling = child
		rec.setPrevSibling(top.tail)
	}
	top.tail = child
}

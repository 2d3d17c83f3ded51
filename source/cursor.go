package source

import (
	"strings"
	"unicode/utf8"
)

const DefaultTabWidth = 8

// Cursor walks a source text one Unicode scalar value at a time.
// The whole cursor state is its Location, so any earlier Location can be restored with Reset.
type Cursor struct {
	text     string
	loc      Location
	tabWidth uint
}

func NewCursor(text string, tabWidth int) *Cursor {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Cursor{
		text:     text,
		loc:      Start,
		tabWidth: uint(tabWidth),
	}
}

func (c *Cursor) Location() Location {
	return c.loc
}

func (c *Cursor) Reset(loc Location) {
	c.loc = loc
}

func (c *Cursor) AtEOF() bool {
	return int(c.loc.Offset) >= len(c.text)
}

func (c *Cursor) Peek() (rune, bool) {
	if c.AtEOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.loc.Offset:])
	return r, true
}

// PeekAt looks n code points ahead, PeekAt(0) is Peek.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	offset := int(c.loc.Offset)
	for {
		if offset >= len(c.text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(c.text[offset:])
		if n == 0 {
			return r, true
		}
		n--
		offset += size
	}
}

func (c *Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.text[c.loc.Offset:], s)
}

func (c *Cursor) Advance() (rune, bool) {
	if c.AtEOF() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.text[c.loc.Offset:])
	c.loc.Offset += uint(size)

	switch r {
	case '\n', '\f':
		c.newline()
	case '\r':
		// \r\n is one newline, counted at the \n
		if next, ok := c.Peek(); !ok || next != '\n' {
			c.newline()
		}
	case '\t':
		c.loc.Column = ((c.loc.Column-1)/c.tabWidth+1)*c.tabWidth + 1
	default:
		c.loc.Column++
	}

	return r, true
}

func (c *Cursor) newline() {
	c.loc.Line++
	c.loc.Column = 1
}

// Slice returns the source text between two locations.
func (c *Cursor) Slice(from, to Location) string {
	return c.text[from.Offset:to.Offset]
}

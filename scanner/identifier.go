package scanner

import (
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

// symbol scans a maximal run of symbol characters, reserved operators take priority
func symbol(c *source.Cursor) results.Result[lexemes.Lexeme] {
	text, ok := symbolRun(c)
	if !ok {
		return results.NoMatch[lexemes.Lexeme]()
	}
	if op, ok := lexemes.LookupROp(text); ok {
		return results.Matched(lexemes.ReservedOp(op))
	}
	return results.Matched(lexemes.Operator(lexemes.Unqualified(text)))
}

func (t *Tokenizer) identifier(c *source.Cursor) results.Result[lexemes.Lexeme] {
	r, ok := c.Peek()
	switch {
	case !ok:
		return results.NoMatch[lexemes.Lexeme]()
	case isLarge(r):
		return t.qualified(c)
	case isSmall(r):
		name, _ := identRun(c, isSmall)
		if id, ok := lexemes.LookupRId(name); ok {
			return results.Matched(lexemes.ReservedId(id))
		}
		return results.Matched(lexemes.Identifier(lexemes.Unqualified(name)))
	}
	return results.NoMatch[lexemes.Lexeme]()
}

func symbolRun(c *source.Cursor) (string, bool) {
	start := c.Location()
	for {
		r, ok := c.Peek()
		if !ok || !isSymbol(r) {
			break
		}
		c.Advance()
	}
	end := c.Location()
	return c.Slice(start, end), end != start
}

func identRun(c *source.Cursor, first func(rune) bool) (string, bool) {
	r, ok := c.Peek()
	if !ok || !first(r) {
		return "", false
	}
	start := c.Location()
	c.Advance()
	for {
		r, ok := c.Peek()
		if !ok || !isIdentRest(r) {
			break
		}
		c.Advance()
	}
	return c.Slice(start, c.Location()), true
}

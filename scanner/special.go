package scanner

import (
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

func special(c *source.Cursor) results.Result[lexemes.Lexeme] {
	r, ok := c.Peek()
	if !ok || !lexemes.IsSpecial(r) {
		return results.NoMatch[lexemes.Lexeme]()
	}
	c.Advance()
	return results.Matched(lexemes.SpecialLexeme(lexemes.Special(r)))
}

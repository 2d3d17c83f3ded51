package scanner

import (
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

func whiteChar(c *source.Cursor) results.Result[struct{}] {
	r, ok := c.Peek()
	if !ok || !isWhite(r) {
		return results.NoMatch[struct{}]()
	}
	c.Advance()
	return results.Matched(struct{}{})
}

// lineComment: two or more dashes not followed by a symbol, up to the end of line
func lineComment(c *source.Cursor) results.Result[struct{}] {
	if !c.HasPrefix("--") {
		return results.NoMatch[struct{}]()
	}
	n := 2
	for {
		r, ok := c.PeekAt(n)
		if !ok {
			break
		}
		if r == '-' {
			n++
			continue
		}
		if isSymbol(r) {
			// an operator like --> or --|
			return results.NoMatch[struct{}]()
		}
		break
	}
	for {
		r, ok := c.Peek()
		if !ok || isNewline(r) {
			break
		}
		c.Advance()
	}
	return results.Matched(struct{}{})
}

// blockComment: {- ... -}, nested
func blockComment(c *source.Cursor) results.Result[struct{}] {
	if !c.HasPrefix("{-") {
		return results.NoMatch[struct{}]()
	}
	start := c.Location()
	c.Advance()
	c.Advance()
	for depth := 1; depth > 0; {
		switch {
		case c.HasPrefix("{-"):
			c.Advance()
			c.Advance()
			depth++
		case c.HasPrefix("-}"):
			c.Advance()
			c.Advance()
			depth--
		default:
			if _, ok := c.Advance(); !ok {
				return results.Malformed[struct{}](
					lexerrs.New(lexerrs.ErrUnterminatedComment, source.Range{
						Start: start,
						End:   c.Location(),
					}).WithDetail("%d unclosed", depth),
				)
			}
		}
	}
	return results.Matched(struct{}{})
}

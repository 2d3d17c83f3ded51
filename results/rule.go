package results

import (
	"github.com/reusee/hslex/source"
)

// Rule scans from the cursor.
// A rule answering NoMatch must leave the cursor where it found it.
type Rule[T any] func(c *source.Cursor) Result[T]

// Anchored restores the cursor when rule answers NoMatch.
func Anchored[T any](rule Rule[T]) Rule[T] {
	return func(c *source.Cursor) Result[T] {
		mark := c.Location()
		res := rule(c)
		if res.kind == KindNoMatch {
			c.Reset(mark)
		}
		return res
	}
}

// AndThen runs next on the value matched by rule.
// A NoMatch from next rolls the cursor back to before rule, so the sequence consumed nothing.
func AndThen[T, U any](rule Rule[T], next func(T) Rule[U]) Rule[U] {
	return func(c *source.Cursor) Result[U] {
		mark := c.Location()
		res := rule(c)
		if res.kind != KindMatched {
			return Propagate[U](res)
		}
		ret := next(res.value)(c)
		if ret.kind == KindNoMatch {
			c.Reset(mark)
		}
		return ret
	}
}

func Map[T, U any](rule Rule[T], fn func(T) U) Rule[U] {
	return func(c *source.Cursor) Result[U] {
		res := rule(c)
		if res.kind != KindMatched {
			return Propagate[U](res)
		}
		return Matched(fn(res.value))
	}
}

// Alt tries rules in order and stops at the first Matched or Malformed.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(c *source.Cursor) Result[T] {
		for _, rule := range rules {
			res := Anchored(rule)(c)
			if res.kind != KindNoMatch {
				return res
			}
		}
		return NoMatch[T]()
	}
}

// Optional turns NoMatch into a match of fallback.
func Optional[T any](rule Rule[T], fallback T) Rule[T] {
	return func(c *source.Cursor) Result[T] {
		res := Anchored(rule)(c)
		if res.kind == KindNoMatch {
			return Matched(fallback)
		}
		return res
	}
}

// Many folds zero or more matches of rule.
func Many[T, A any](rule Rule[T], init A, fold func(A, T) A) Rule[A] {
	return func(c *source.Cursor) Result[A] {
		acc := init
		for {
			before := c.Location()
			res := Anchored(rule)(c)
			switch res.kind {
			case KindMalformed:
				return Propagate[A](res)
			case KindNoMatch:
				return Matched(acc)
			}
			acc = fold(acc, res.value)
			if c.Location() == before {
				// matched without consuming
				return Matched(acc)
			}
		}
	}
}

// Some folds one or more matches of rule.
func Some[T, A any](rule Rule[T], init A, fold func(A, T) A) Rule[A] {
	return AndThen(rule, func(first T) Rule[A] {
		return Many(rule, fold(init, first), fold)
	})
}

// Char matches one code point satisfying pred.
func Char(pred func(rune) bool) Rule[rune] {
	return func(c *source.Cursor) Result[rune] {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			return NoMatch[rune]()
		}
		c.Advance()
		return Matched(r)
	}
}

// Literal matches s exactly.
func Literal(s string) Rule[string] {
	return func(c *source.Cursor) Result[string] {
		if s == "" || !c.HasPrefix(s) {
			return NoMatch[string]()
		}
		for range []rune(s) {
			c.Advance()
		}
		return Matched(s)
	}
}

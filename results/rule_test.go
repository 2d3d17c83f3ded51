package results

import (
	"errors"
	"testing"
	"unicode"

	"github.com/reusee/hslex/source"
)

var errBroken = errors.New("broken")

func digits() Rule[string] {
	return Some(Char(unicode.IsDigit), "", func(acc string, r rune) string {
		return acc + string(r)
	})
}

func TestAltOrder(t *testing.T) {
	c := source.NewCursor("->x", 0)
	rule := Alt(
		Literal("->"),
		Literal("-"),
	)
	res := rule(c)
	if !res.IsMatched() || res.Value() != "->" {
		t.Fatalf("got %v", res)
	}
	if r, _ := c.Peek(); r != 'x' {
		t.Fatalf("got %q", r)
	}
}

func TestAltRestoresCursor(t *testing.T) {
	c := source.NewCursor("abd", 0)
	consumeThenFail := func(c *source.Cursor) Result[string] {
		c.Advance()
		c.Advance()
		return NoMatch[string]()
	}
	res := Alt(consumeThenFail, Literal("ab"))(c)
	if res.Value() != "ab" {
		t.Fatalf("got %v", res)
	}
}

func TestAltStopsAtMalformed(t *testing.T) {
	c := source.NewCursor("abc", 0)
	called := false
	res := Alt(
		func(c *source.Cursor) Result[string] {
			c.Advance()
			return Malformed[string](errBroken)
		},
		func(c *source.Cursor) Result[string] {
			called = true
			return Matched("x")
		},
	)(c)
	if !res.IsMalformed() || !errors.Is(res.Err(), errBroken) {
		t.Fatalf("got %v", res)
	}
	if called {
		t.Fatal("alternative after malformed should not run")
	}
	if c.Location().Offset != 1 {
		t.Fatalf("got %v", c.Location())
	}
}

func TestAndThenRollsBack(t *testing.T) {
	c := source.NewCursor("12a", 0)
	rule := AndThen(digits(), func(ds string) Rule[string] {
		return Map(Literal("."), func(string) string {
			return ds + "."
		})
	})
	res := rule(c)
	if !res.IsNoMatch() {
		t.Fatalf("got %v", res)
	}
	if c.Location().Offset != 0 {
		t.Fatalf("cursor not restored: %v", c.Location())
	}
}

func TestAndThenPropagatesMalformed(t *testing.T) {
	c := source.NewCursor("12", 0)
	rule := AndThen(digits(), func(string) Rule[int] {
		return func(*source.Cursor) Result[int] {
			return Malformed[int](errBroken)
		}
	})
	res := Map(rule, func(i int) int { return i + 1 })(c)
	if !errors.Is(res.Err(), errBroken) {
		t.Fatalf("got %v", res)
	}
}

func TestOptional(t *testing.T) {
	c := source.NewCursor("x", 0)
	res := Optional(Literal("+"), "")(c)
	if !res.IsMatched() || res.Value() != "" {
		t.Fatalf("got %v", res)
	}
}

func TestManyStopsWithoutProgress(t *testing.T) {
	c := source.NewCursor("aaa", 0)
	empty := func(*source.Cursor) Result[int] {
		return Matched(1)
	}
	res := Many(empty, 0, func(a, b int) int { return a + b })(c)
	if res.Value() != 1 {
		t.Fatalf("got %v", res)
	}
}

func TestSome(t *testing.T) {
	c := source.NewCursor("x", 0)
	if res := digits()(c); !res.IsNoMatch() {
		t.Fatalf("got %v", res)
	}
	c = source.NewCursor("2024-", 0)
	if res := digits()(c); res.Value() != "2024" {
		t.Fatalf("got %v", res)
	}
}

func TestPropagatePanicsOnMatched(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	Propagate[int](Matched("x"))
}

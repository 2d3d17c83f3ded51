package scanner

import (
	"errors"
	"testing"

	"github.com/reusee/hslex/lexerrs"
)

func TestComments(t *testing.T) {
	cases := [][2]string{
		{"a -- b", "Identifier(a)"},
		{"a --- b\nc", "Identifier(a) Identifier(c)"},
		{"a -- | doc\nc", "Identifier(a) Identifier(c)"},
		{"a --| b", "Identifier(a) Operator(--|) Identifier(b)"},
		{"a --> b", "Identifier(a) Operator(-->) Identifier(b)"},
		{"a -> b", "Identifier(a) ReservedOp(->) Identifier(b)"},
		{"a - b", "Identifier(a) Operator(-) Identifier(b)"},
		{"a {- b -} c", "Identifier(a) Identifier(c)"},
		{"a {- {- b -} -} c", "Identifier(a) Identifier(c)"},
		{"a {- - -} c", "Identifier(a) Identifier(c)"},
		{"a {--} c", "Identifier(a) Identifier(c)"},
		{"a {- -- -} c", "Identifier(a) Identifier(c)"},
		{"a--\nb", "Identifier(a) Identifier(b)"},
		{"a\r\nb\fc\vd", "Identifier(a) Identifier(b) Identifier(c) Identifier(d)"},
	}
	for _, c := range cases {
		if got := kinds(mustScan(t, c[0])); got != c[1] {
			t.Fatalf("%q: got %s", c[0], got)
		}
	}
}

func TestUnterminatedComment(t *testing.T) {
	_, err := scan("x {- a {- b -}\n")
	if !errors.Is(err, lexerrs.ErrUnterminatedComment) {
		t.Fatalf("got %v", err)
	}
	lexErr, _ := lexerrs.As(err)
	if str := lexErr.Range.String(); str != "1:3-2:1" {
		t.Fatalf("got %s", str)
	}
	if lexErr.Detail != "1 unclosed" {
		t.Fatalf("got %s", lexErr.Detail)
	}
}

func TestLineNumbers(t *testing.T) {
	ls := mustScan(t, "a\r\nb\rc\nd")
	expected := []uint{1, 2, 3, 4}
	for i, line := range expected {
		if ls[i].Range.Start.Line != line || ls[i].Range.Start.Column != 1 {
			t.Fatalf("%d: got %v", i, ls[i].Range)
		}
	}
}

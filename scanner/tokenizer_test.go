package scanner

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/source"
)

func scan(text string) ([]lexemes.EnrichedLexeme, error) {
	tokenizer := New(source.New("test", text), DefaultOptions(), nil)
	var ret []lexemes.EnrichedLexeme
	for lexeme, err := range tokenizer.All() {
		if err != nil {
			return ret, err
		}
		ret = append(ret, lexeme)
	}
	return ret, nil
}

func mustScan(t *testing.T, text string) []lexemes.EnrichedLexeme {
	t.Helper()
	ret, err := scan(text)
	if err != nil {
		t.Fatalf("scan %q: %v", text, err)
	}
	return ret
}

// kinds renders lexemes without EOF
func kinds(lexemes_ []lexemes.EnrichedLexeme) string {
	var parts []string
	for _, l := range lexemes_ {
		if l.Kind == lexemes.KindEOF {
			continue
		}
		parts = append(parts, l.Lexeme.String())
	}
	return strings.Join(parts, " ")
}

func TestEmpty(t *testing.T) {
	ls := mustScan(t, "")
	if len(ls) != 1 || ls[0].Kind != lexemes.KindEOF {
		t.Fatalf("got %v", ls)
	}
	if !ls[0].Range.IsEmpty() {
		t.Fatalf("got %v", ls[0].Range)
	}

	ls = mustScan(t, "  -- comment\n {- block -} ")
	if len(ls) != 1 || ls[0].Kind != lexemes.KindEOF {
		t.Fatalf("got %v", ls)
	}
	if ls[0].Range.Start.Line != 2 {
		t.Fatalf("got %v", ls[0].Range)
	}
}

func TestRanges(t *testing.T) {
	ls := mustScan(t, "f x\n\ty")
	if len(ls) != 4 {
		t.Fatalf("got %v", ls)
	}
	expected := []string{
		"1:1-1:2",
		"1:3-1:4",
		"2:9-2:10",
		"2:10-2:10",
	}
	for i, l := range ls {
		if str := l.Range.String(); str != expected[i] {
			t.Fatalf("%d: got %s", i, str)
		}
	}
	if ls[2].Text != "y" {
		t.Fatalf("got %q", ls[2].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokenizer := New(source.New("test", `"abc`), DefaultOptions(), nil)
	_, err := tokenizer.Next()
	if !errors.Is(err, lexerrs.ErrUnterminatedString) {
		t.Fatalf("got %v", err)
	}
	lexErr, ok := lexerrs.As(err)
	if !ok {
		t.Fatal()
	}
	if str := lexErr.Range.String(); str != "1:1-1:5" {
		t.Fatalf("got %s", str)
	}
	// sticky
	_, err2 := tokenizer.Next()
	if err2 != err {
		t.Fatalf("got %v", err2)
	}
}

func TestQualifiedExample(t *testing.T) {
	ls := mustScan(t, "Data.Map.lookup")
	if len(ls) != 2 {
		t.Fatalf("got %v", ls)
	}
	name := ls[0].Name
	if ls[0].Kind != lexemes.KindIdentifier ||
		fmt.Sprint(name.Qualifier) != "[Data Map]" ||
		name.Base != "lookup" {
		t.Fatalf("got %v", ls[0])
	}
}

func TestNumericExample(t *testing.T) {
	ls := mustScan(t, "0xFF")
	if ls[0].Kind != lexemes.KindInteger || ls[0].Integer.Int64() != 255 {
		t.Fatalf("got %v", ls[0])
	}
	ls = mustScan(t, "3.14")
	if ls[0].Kind != lexemes.KindFloat {
		t.Fatalf("got %v", ls[0])
	}
	if ls[0].Float.Rat().Cmp(big.NewRat(314, 100)) != 0 {
		t.Fatalf("got %v", ls[0].Float.Rat())
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	ls, err := scan("x \x01")
	if !errors.Is(err, lexerrs.ErrUnexpectedCharacter) {
		t.Fatalf("got %v", err)
	}
	if len(ls) != 1 {
		t.Fatalf("got %v", ls)
	}
	lexErr, _ := lexerrs.As(err)
	if lexErr.Char != '\x01' {
		t.Fatalf("got %q", lexErr.Char)
	}
	if str := lexErr.Range.String(); str != "1:3-1:4" {
		t.Fatalf("got %s", str)
	}
}

func TestIdempotent(t *testing.T) {
	text := "module Main where\nmain = print (x + 0x1F) -- hi\n  where x = 'a' : \"bc\"\n"
	first := mustScan(t, text)
	second := mustScan(t, text)
	if len(first) != len(second) {
		t.Fatal()
	}
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Fatalf("%d: %v %v", i, first[i], second[i])
		}
	}
}

func TestCoverage(t *testing.T) {
	text := "f (x:xs) = {- c {- d -} -} x `seq` f xs -- done\n\tg = [1..10]\n"
	ls := mustScan(t, text)
	var offset uint
	for _, l := range ls {
		if l.Range.Start.Offset < offset {
			t.Fatalf("overlap at %v", l)
		}
		skipped := text[offset:l.Range.Start.Offset]
		if strings.TrimSpace(skipped) != "" &&
			!strings.Contains(skipped, "--") &&
			!strings.Contains(skipped, "{-") {
			t.Fatalf("gap %q before %v", skipped, l)
		}
		if l.Text != text[l.Range.Start.Offset:l.Range.End.Offset] {
			t.Fatalf("got %q", l.Text)
		}
		offset = l.Range.End.Offset
	}
	if offset != uint(len(text)) {
		t.Fatalf("got %d", offset)
	}
}

func TestLongestMatch(t *testing.T) {
	cases := [][2]string{
		{"->", "ReservedOp(->)"},
		{"-->", "Operator(-->)"},
		{"a->b", "Identifier(a) ReservedOp(->) Identifier(b)"},
		{"<-<", "Operator(<-<)"},
		{"==", "Operator(==)"},
		{"=", "ReservedOp(=)"},
		{"letter", "Identifier(letter)"},
		{"let", "ReservedId(let)"},
		{"x'", "Identifier(x')"},
		{"_", "ReservedId(_)"},
		{"_x", "Identifier(_x)"},
		{"[1..]", "Special([) IntegerLiteral(1) ReservedOp(..) Special(])"},
	}
	for _, c := range cases {
		ls := mustScan(t, c[0])
		if got := kinds(ls); got != c[1] {
			t.Fatalf("%q: got %s", c[0], got)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	tokenizer := New(source.New("test", ""), Options{}, nil)
	if tokenizer.options.TabWidth != source.DefaultTabWidth {
		t.Fatal()
	}
	if tokenizer.options.MaxExponent != DefaultMaxExponent {
		t.Fatal()
	}
}

package scanner

import (
	"errors"
	"testing"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
)

func TestCharLiterals(t *testing.T) {
	cases := []struct {
		text     string
		expected rune
	}{
		{`'a'`, 'a'},
		{`'λ'`, 'λ'},
		{`'"'`, '"'},
		{`'\''`, '\''},
		{`'\n'`, '\n'},
		{`'\\'`, '\\'},
		{`'\65'`, 'A'},
		{`'\x41'`, 'A'},
		{`'\o101'`, 'A'},
		{`'\^A'`, 1},
		{`'\^@'`, 0},
		{`'\^_'`, 0x1f},
		{`'\NUL'`, 0},
		{`'\SOH'`, 1},
		{`'\SO'`, 0x0e},
		{`'\DEL'`, 0x7f},
		{`'\SP'`, ' '},
		{`'\x10FFFF'`, 0x10ffff},
	}
	for _, c := range cases {
		ls := mustScan(t, c.text)
		if len(ls) != 2 || ls[0].Kind != lexemes.KindChar {
			t.Fatalf("%s: got %v", c.text, ls)
		}
		if ls[0].Char != c.expected {
			t.Fatalf("%s: got %q", c.text, ls[0].Char)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		text     string
		expected string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\nb"`, "a\nb"},
		{`"\SOH"`, "\x01"},
		{`"\SO\&H"`, "\x0eH"},
		{`"\SOH\&"`, "\x01"},
		{`"\1234\&5"`, "\u04d25"},
		{`"a\   \b"`, "ab"},
		{"\"a\\\n   \\b\"", "ab"},
		{`"\x41\x42"`, "AB"},
		{`"'"`, "'"},
		{"\"two\nlines\"", "two\nlines"},
		{`"日本"`, "日本"},
	}
	for _, c := range cases {
		ls := mustScan(t, c.text)
		if len(ls) != 2 || ls[0].Kind != lexemes.KindString {
			t.Fatalf("%s: got %v", c.text, ls)
		}
		if got := string(ls[0].Runes); got != c.expected {
			t.Fatalf("%s: got %q", c.text, got)
		}
	}
}

func TestLiteralErrors(t *testing.T) {
	cases := []struct {
		text  string
		err   error
		rng   string
		char  rune
	}{
		{`'a`, lexerrs.ErrUnterminatedChar, "1:1-1:3", 0},
		{"'a\n'", lexerrs.ErrUnterminatedChar, "1:1-1:3", 0},
		{"'\n'", lexerrs.ErrUnterminatedChar, "1:1-1:2", 0},
		{`'ab'`, lexerrs.ErrUnterminatedChar, "1:1-1:3", 0},
		{`''`, lexerrs.ErrUnexpectedCharacter, "1:1-1:3", '\''},
		{`'\&'`, lexerrs.ErrInvalidEscape, "1:2-1:3", '&'},
		{`'\ \'`, lexerrs.ErrInvalidEscape, "1:2-1:3", ' '},
		{`"\q"`, lexerrs.ErrInvalidEscape, "1:2-1:3", 'q'},
		{`"\x110000"`, lexerrs.ErrInvalidEscape, "1:2-1:10", 0},
		{`"\99999999999999999999"`, lexerrs.ErrInvalidEscape, "1:2-1:23", 0},
		{`"\x"`, lexerrs.ErrInvalidEscape, "1:2-1:4", '"'},
		{`"\^a"`, lexerrs.ErrInvalidEscape, "1:2-1:3", '^'},
		{`"a\  b"`, lexerrs.ErrInvalidEscape, "1:3-1:6", 'b'},
		{`"\`, lexerrs.ErrInvalidEscape, "1:2-1:3", 0},
		{`"abc`, lexerrs.ErrUnterminatedString, "1:1-1:5", 0},
		{"\"abc\ndef", lexerrs.ErrUnterminatedString, "1:1-2:4", 0},
	}
	for _, c := range cases {
		_, err := scan(c.text)
		if !errors.Is(err, c.err) {
			t.Fatalf("%q: got %v", c.text, err)
		}
		lexErr, ok := lexerrs.As(err)
		if !ok {
			t.Fatalf("%q: got %v", c.text, err)
		}
		if str := lexErr.Range.String(); str != c.rng {
			t.Fatalf("%q: got %s", c.text, str)
		}
		if lexErr.Char != c.char {
			t.Fatalf("%q: got %q", c.text, lexErr.Char)
		}
	}
}

func TestMnemonicsOrder(t *testing.T) {
	for i := 1; i < len(asciiMnemonics); i++ {
		if len(asciiMnemonics[i]) > len(asciiMnemonics[i-1]) {
			t.Fatalf("got %v", asciiMnemonics)
		}
	}
	if len(asciiMnemonics) != len(asciiNames) {
		t.Fatal()
	}
}

package scanner

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

var charEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

var asciiNames = map[string]rune{
	"NUL": 0x00, "SOH": 0x01, "STX": 0x02, "ETX": 0x03,
	"EOT": 0x04, "ENQ": 0x05, "ACK": 0x06, "BEL": 0x07,
	"BS": 0x08, "HT": 0x09, "LF": 0x0a, "VT": 0x0b,
	"FF": 0x0c, "CR": 0x0d, "SO": 0x0e, "SI": 0x0f,
	"DLE": 0x10, "DC1": 0x11, "DC2": 0x12, "DC3": 0x13,
	"DC4": 0x14, "NAK": 0x15, "SYN": 0x16, "ETB": 0x17,
	"CAN": 0x18, "EM": 0x19, "SUB": 0x1a, "ESC": 0x1b,
	"FS": 0x1c, "GS": 0x1d, "RS": 0x1e, "US": 0x1f,
	"SP": 0x20, "DEL": 0x7f,
}

// longest first, so SOH wins over SO
var asciiMnemonics = func() []string {
	names := make([]string, 0, len(asciiNames))
	for name := range asciiNames {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return names
}()

func charLiteral(c *source.Cursor) results.Result[lexemes.Lexeme] {
	if r, ok := c.Peek(); !ok || r != '\'' {
		return results.NoMatch[lexemes.Lexeme]()
	}
	start := c.Location()
	c.Advance()

	unterminated := func() results.Result[lexemes.Lexeme] {
		return results.Malformed[lexemes.Lexeme](
			lexerrs.New(lexerrs.ErrUnterminatedChar, source.Range{
				Start: start,
				End:   c.Location(),
			}),
		)
	}

	var value rune
	r, ok := c.Peek()
	switch {

	case !ok || isNewline(r):
		return unterminated()

	case r == '\'':
		c.Advance()
		return results.Malformed[lexemes.Lexeme](
			lexerrs.New(lexerrs.ErrUnexpectedCharacter, source.Range{
				Start: start,
				End:   c.Location(),
			}).WithChar('\'').WithDetail("empty character literal"),
		)

	case r == '\\':
		res := escape(c, false)
		if !res.IsMatched() {
			return results.Propagate[lexemes.Lexeme](res)
		}
		value = res.Value().value

	default:
		c.Advance()
		value = r
	}

	if r, ok := c.Peek(); !ok || r != '\'' {
		return unterminated()
	}
	c.Advance()
	return results.Matched(lexemes.Char(value))
}

func stringLiteral(c *source.Cursor) results.Result[lexemes.Lexeme] {
	if r, ok := c.Peek(); !ok || r != '"' {
		return results.NoMatch[lexemes.Lexeme]()
	}
	start := c.Location()
	c.Advance()

	var runes []rune
	for {
		r, ok := c.Peek()
		switch {

		case !ok:
			return results.Malformed[lexemes.Lexeme](
				lexerrs.New(lexerrs.ErrUnterminatedString, source.Range{
					Start: start,
					End:   c.Location(),
				}),
			)

		case r == '"':
			c.Advance()
			if runes == nil {
				runes = []rune{}
			}
			return results.Matched(lexemes.String(runes))

		case r == '\\':
			res := escape(c, true)
			if !res.IsMatched() {
				return results.Propagate[lexemes.Lexeme](res)
			}
			if e := res.Value(); !e.empty {
				runes = append(runes, e.value)
			}

		default:
			c.Advance()
			runes = append(runes, r)

		}
	}
}

type escaped struct {
	value rune
	// \& and gaps denote no character
	empty bool
}

// escape scans a backslash sequence. Gaps and \& are only valid in strings.
func escape(c *source.Cursor, inString bool) results.Result[escaped] {
	start := c.Location()
	c.Advance() // backslash

	invalid := func(format string, args ...any) results.Result[escaped] {
		err := lexerrs.New(lexerrs.ErrInvalidEscape, source.Range{
			Start: start,
			End:   c.Location(),
		})
		if r, ok := c.Peek(); ok && !isNewline(r) {
			err = err.WithChar(r)
		}
		return results.Malformed[escaped](err.WithDetail(format, args...))
	}

	r, ok := c.Peek()
	if !ok {
		return invalid("escape at end of input")
	}

	if v, ok := charEscapes[r]; ok {
		c.Advance()
		return results.Matched(escaped{value: v})
	}

	switch {

	case r == '&':
		if !inString {
			return invalid("empty escape in character literal")
		}
		c.Advance()
		return results.Matched(escaped{empty: true})

	case isWhite(r):
		if !inString {
			return invalid("gap in character literal")
		}
		for {
			r, ok := c.Peek()
			if !ok || !isWhite(r) {
				break
			}
			c.Advance()
		}
		if r, ok := c.Peek(); !ok || r != '\\' {
			return invalid("unterminated string gap")
		}
		c.Advance()
		return results.Matched(escaped{empty: true})

	case r == '^':
		next, ok := c.PeekAt(1)
		if !ok || next < '@' || next > '_' {
			return invalid("bad control escape")
		}
		c.Advance()
		c.Advance()
		return results.Matched(escaped{value: next - '@'})

	case isDigit(r):
		return numericEscape(c, start, 10, isDigit)

	case r == 'o':
		c.Advance()
		return numericEscape(c, start, 8, isOctit)

	case r == 'x':
		c.Advance()
		return numericEscape(c, start, 16, isHexit)

	}

	for _, name := range asciiMnemonics {
		if c.HasPrefix(name) {
			for range name {
				c.Advance()
			}
			return results.Matched(escaped{value: asciiNames[name]})
		}
	}

	return invalid("unknown escape")
}

func numericEscape(c *source.Cursor, start source.Location, base int64, pred func(rune) bool) results.Result[escaped] {
	var value int64
	overflow := false
	n := 0
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Advance()
		n++
		value = value*base + digitValue(r)
		if value > utf8.MaxRune {
			overflow = true
			// saturate
			value = utf8.MaxRune + 1
		}
	}
	rng := source.Range{
		Start: start,
		End:   c.Location(),
	}
	if n == 0 {
		err := lexerrs.New(lexerrs.ErrInvalidEscape, rng).WithDetail("missing digits")
		if r, ok := c.Peek(); ok && !isNewline(r) {
			err = err.WithChar(r)
		}
		return results.Malformed[escaped](err)
	}
	if overflow {
		return results.Malformed[escaped](
			lexerrs.New(lexerrs.ErrInvalidEscape, rng).
				WithDetail("code point out of range"),
		)
	}
	return results.Matched(escaped{value: rune(value)})
}

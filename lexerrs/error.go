package lexerrs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/hslex/source"
	"golang.org/x/text/width"
)

var (
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedChar    = errors.New("unterminated character literal")
	ErrUnterminatedComment = errors.New("unterminated block comment")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrMalformedNumeric    = errors.New("malformed numeric literal")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrLayoutViolation     = errors.New("layout violation")
)

// LexError is a lexical error at a source range.
// Err is one of the sentinel errors of this package.
type LexError struct {
	Err   error
	Range source.Range
	// offending code point, for ErrUnexpectedCharacter and ErrInvalidEscape
	Char rune
	// extra explanation, may be empty
	Detail string
}

func New(err error, rng source.Range) *LexError {
	return &LexError{
		Err:   err,
		Range: rng,
	}
}

func (e *LexError) WithChar(r rune) *LexError {
	e.Char = r
	return e
}

func (e *LexError) WithDetail(format string, args ...any) *LexError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

func (e *LexError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Err.Error())
	if e.Char != 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.QuoteRune(e.Char))
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	sb.WriteString(" at ")
	sb.WriteString(e.Range.String())
	return sb.String()
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// As extracts the LexError from an error chain.
func As(err error) (*LexError, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr, true
	}
	return nil, false
}

// Render formats the error with the offending source line and a caret line under the range.
func (e *LexError) Render(src *source.Source) string {
	var sb strings.Builder
	name := "<input>"
	if src != nil && src.Name != "" {
		name = src.Name
	}
	sb.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", name, e.Range.Start.Line, e.Range.Start.Column, e.Error()))
	if src == nil {
		return sb.String()
	}

	line, ok := src.Line(e.Range.Start.Line)
	if !ok {
		return sb.String()
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	// caret under the start column, tildes up to the end of the range on this line
	startByte := src.LineOffset(e.Range.Start)
	endByte := len(line)
	if e.Range.End.Line == e.Range.Start.Line {
		endByte = min(endByte, src.LineOffset(e.Range.End))
	}
	for i, r := range line {
		if i >= startByte {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	sb.WriteString("^")
	for i, r := range line {
		if i <= startByte || i >= endByte {
			continue
		}
		sb.WriteString(strings.Repeat("~", runeWidth(r)))
	}
	sb.WriteString("\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

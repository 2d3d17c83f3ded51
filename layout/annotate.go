package layout

import (
	"fmt"
	"iter"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/scanner"
)

type Marker uint8

const (
	// a source lexeme
	MarkerNone Marker = iota
	// {n}: a layout keyword is not followed by {, n is the column of the next lexeme or 0 at EOF
	MarkerBlock
	// <n>: the first lexeme of a line at column n, unless it follows a {n}
	MarkerLine
)

type Annotated struct {
	Marker Marker
	Column uint
	// set for MarkerNone
	Lexeme lexemes.EnrichedLexeme
}

func (a Annotated) String() string {
	switch a.Marker {
	case MarkerBlock:
		return fmt.Sprintf("{%d}", a.Column)
	case MarkerLine:
		return fmt.Sprintf("<%d>", a.Column)
	}
	return a.Lexeme.Lexeme.String()
}

// Annotate yields the source lexemes with the indentation markers the layout rule consumes.
// With options.TopLevel, a module not starting with `module` or `{` starts with {n}.
func Annotate(tokenizer *scanner.Tokenizer, options Options) iter.Seq2[Annotated, error] {
	return func(yield func(Annotated, error) bool) {
		var lastLine uint
		afterKeyword := false
		first := true
		for lexeme, err := range tokenizer.All() {
			if err != nil {
				yield(Annotated{}, err)
				return
			}
			start := lexeme.Range.Start

			if first {
				first = false
				afterKeyword = options.TopLevel && !lexeme.IsRId(lexemes.RIdModule)
			}

			blockMarked := false
			if afterKeyword {
				afterKeyword = false
				if !lexeme.IsSpecial(lexemes.SpecialOpenBrace) {
					blockMarked = true
					column := start.Column
					if lexeme.Kind == lexemes.KindEOF {
						column = 0
					}
					if !yield(Annotated{
						Marker: MarkerBlock,
						Column: column,
					}, nil) {
						return
					}
				}
			}
			if !blockMarked && lexeme.Kind != lexemes.KindEOF && start.Line > lastLine {
				if !yield(Annotated{
					Marker: MarkerLine,
					Column: start.Column,
				}, nil) {
					return
				}
			}

			if lexeme.Kind == lexemes.KindEOF {
				yield(Annotated{
					Lexeme: lexeme,
				}, nil)
				return
			}

			afterKeyword = isLayoutKeyword(lexeme.Lexeme)
			lastLine = lexeme.Range.End.Line
			if !yield(Annotated{
				Lexeme: lexeme,
			}, nil) {
				return
			}
		}
	}
}

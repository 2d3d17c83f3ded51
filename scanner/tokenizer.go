package scanner

import (
	"iter"
	"log/slog"
	"math"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/results"
	"github.com/reusee/hslex/source"
)

const DefaultMaxExponent = 4096

// MaxMaxExponent keeps float exponents within the int32 range of apd decimals.
const MaxMaxExponent = math.MaxInt32

type Options struct {
	// columns per tab stop
	TabWidth int
	// largest accepted magnitude of a float literal's decimal exponent
	MaxExponent int
	// resolves qualifiers of qualified names, may be nil
	Modules lexemes.ModuleLookup
}

func DefaultOptions() Options {
	return Options{
		TabWidth:    source.DefaultTabWidth,
		MaxExponent: DefaultMaxExponent,
	}
}

// Tokenizer produces located lexemes from a source text, one per Next call.
// After the first error every call returns that error.
type Tokenizer struct {
	src     *source.Source
	cursor  *source.Cursor
	options Options
	logger  *slog.Logger

	skip   results.Rule[int]
	lexeme results.Rule[lexemes.Lexeme]

	err error
}

func New(src *source.Source, options Options, logger *slog.Logger) *Tokenizer {
	if options.TabWidth <= 0 {
		options.TabWidth = source.DefaultTabWidth
	}
	if options.MaxExponent <= 0 {
		options.MaxExponent = DefaultMaxExponent
	} else if options.MaxExponent > MaxMaxExponent {
		options.MaxExponent = MaxMaxExponent
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t := &Tokenizer{
		src:     src,
		cursor:  source.NewCursor(src.Content, options.TabWidth),
		options: options,
		logger:  logger,
	}
	t.skip = results.Many(
		results.Alt[struct{}](
			whiteChar,
			lineComment,
			blockComment,
		),
		0,
		func(n int, _ struct{}) int {
			return n + 1
		},
	)
	t.lexeme = results.Alt[lexemes.Lexeme](
		special,
		symbol,
		t.identifier,
		t.numeral,
		charLiteral,
		stringLiteral,
	)
	return t
}

func (t *Tokenizer) Source() *source.Source {
	return t.src
}

func (t *Tokenizer) Location() source.Location {
	return t.cursor.Location()
}

func (t *Tokenizer) Next() (ret lexemes.EnrichedLexeme, err error) {
	if t.err != nil {
		return ret, t.err
	}
	defer func() {
		if err != nil {
			t.err = err
			t.logger.Debug("scan error", "error", err)
		}
	}()

	if res := t.skip(t.cursor); res.IsMalformed() {
		return ret, res.Err()
	}

	start := t.cursor.Location()
	if t.cursor.AtEOF() {
		return lexemes.EnrichedLexeme{
			Lexeme: lexemes.Virtual(lexemes.KindEOF),
			Range:  source.At(start),
		}, nil
	}

	res := t.lexeme(t.cursor)
	switch res.Kind() {

	case results.KindMatched:
		end := t.cursor.Location()
		lexeme := res.Value()
		lexeme.Text = t.cursor.Slice(start, end)
		ret = lexemes.EnrichedLexeme{
			Lexeme: lexeme,
			Range: source.Range{
				Start: start,
				End:   end,
			},
		}
		t.logger.Debug("lexeme",
			"kind", lexeme.Kind,
			"text", lexeme.Text,
			"range", ret.Range,
		)
		return ret, nil

	case results.KindMalformed:
		return ret, res.Err()

	}

	r, _ := t.cursor.Advance()
	return ret, lexerrs.New(lexerrs.ErrUnexpectedCharacter, source.Range{
		Start: start,
		End:   t.cursor.Location(),
	}).WithChar(r)
}

// All yields lexemes up to and including EOF, or up to the first error.
func (t *Tokenizer) All() iter.Seq2[lexemes.EnrichedLexeme, error] {
	return func(yield func(lexemes.EnrichedLexeme, error) bool) {
		for {
			lexeme, err := t.Next()
			if err != nil {
				yield(lexeme, err)
				return
			}
			if !yield(lexeme, nil) {
				return
			}
			if lexeme.Kind == lexemes.KindEOF {
				return
			}
		}
	}
}

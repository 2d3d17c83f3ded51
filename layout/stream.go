package layout

import (
	"iter"
	"log/slog"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/scanner"
	"github.com/reusee/hslex/source"
)

type Options struct {
	// open an implicit block for a module not starting with `module` or `{`
	TopLevel bool
	// verify range order and virtual brace balance
	Check bool
}

// Stream resolves the offside rule over a tokenizer, inserting virtual braces and separators.
type Stream struct {
	tokenizer *scanner.Tokenizer
	options   Options
	logger    *slog.Logger

	contexts []layoutContext
	// lexemes ready to be consumed, in order
	pending []lexemes.EnrichedLexeme

	started     bool
	expectBlock bool
	blockIsLet  bool
	// end line of the previous source lexeme
	lastLine uint
	eof      *lexemes.EnrichedLexeme
	err      error
	// first failed check
	violation error

	// check state
	opens     int
	closes    int
	lastStart uint
}

func New(tokenizer *scanner.Tokenizer, options Options, logger *slog.Logger) *Stream {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Stream{
		tokenizer: tokenizer,
		options:   options,
		logger:    logger,
	}
}

// Current returns the next lexeme without consuming it.
func (s *Stream) Current() (*lexemes.EnrichedLexeme, error) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		if s.eof != nil {
			return s.eof, nil
		}
		if err := s.fill(); err != nil {
			s.err = err
			s.pending = s.pending[:0]
			s.logger.Debug("layout error", "error", err)
			return nil, err
		}
	}
	return &s.pending[0], nil
}

func (s *Stream) Consume() {
	if len(s.pending) > 0 {
		s.pending = s.pending[1:]
	}
}

func (s *Stream) Next() (ret lexemes.EnrichedLexeme, err error) {
	current, err := s.Current()
	if err != nil {
		return ret, err
	}
	ret = *current
	s.Consume()
	return ret, nil
}

// All yields lexemes up to and including EOF, or up to the first error.
func (s *Stream) All() iter.Seq2[lexemes.EnrichedLexeme, error] {
	return func(yield func(lexemes.EnrichedLexeme, error) bool) {
		for {
			lexeme, err := s.Next()
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

// ForceClose pops the innermost implicit context for a parser that cannot accept the current lexeme.
// The returned VirtualClose is placed before the current lexeme and is not queued.
func (s *Stream) ForceClose() (ret lexemes.EnrichedLexeme, ok bool) {
	if len(s.contexts) == 0 || s.contexts[len(s.contexts)-1].explicit {
		return ret, false
	}
	s.contexts = s.contexts[:len(s.contexts)-1]
	s.closes++

	loc := s.tokenizer.Location()
	if len(s.pending) > 0 {
		loc = s.pending[0].Range.Start
	} else if s.eof != nil {
		loc = s.eof.Range.Start
	}
	ret = virtual(lexemes.KindVirtualClose, loc)
	s.logger.Debug("force close", "location", loc, "depth", len(s.contexts))
	return ret, true
}

// fill consumes one source lexeme and queues it with the virtual lexemes before it.
func (s *Stream) fill() error {
	lexeme, err := s.tokenizer.Next()
	if err != nil {
		return err
	}
	start := lexeme.Range.Start

	if !s.started {
		s.started = true
		if s.options.TopLevel && !lexeme.IsRId(lexemes.RIdModule) {
			s.expectBlock = true
		}
	}

	lineStart := lexeme.Range.Start.Line > s.lastLine
	compare := lineStart

	if s.expectBlock {
		s.expectBlock = false
		compare = false
		isLet := s.blockIsLet
		s.blockIsLet = false

		switch {

		case lexeme.IsSpecial(lexemes.SpecialOpenBrace):
			// explicit block, handled below
			// a brace opening a line is still compared
			compare = lineStart

		case lexeme.Kind == lexemes.KindEOF:
			s.open(start, false)
			s.close(start)

		case lexeme.Range.Start.Column > s.enclosingColumn():
			s.open(start, isLet)
			s.contexts[len(s.contexts)-1].column = lexeme.Range.Start.Column

		default:
			// empty block
			s.open(start, false)
			s.close(start)
			compare = true

		}
	}

	if lexeme.Kind == lexemes.KindEOF {
		for i := len(s.contexts) - 1; i >= 0; i-- {
			if !s.contexts[i].explicit {
				s.emit(virtual(lexemes.KindVirtualClose, start))
				s.closes++
			}
		}
		s.contexts = s.contexts[:0]
		if s.options.Check && s.opens != s.closes {
			return lexerrs.New(lexerrs.ErrLayoutViolation, lexeme.Range).
				WithDetail("%d virtual opens, %d virtual closes", s.opens, s.closes)
		}
		s.emit(lexeme)
		if s.violation != nil {
			return s.violation
		}
		s.eof = &lexeme
		return nil
	}

	closedLet := false
	if compare {
		closedLet = s.offside(lexeme)
	}

	switch {

	case lexeme.IsRId(lexemes.RIdIn):
		// an in that already closed its let by indentation closes nothing more
		if !closedLet {
			s.closeLet(start)
		}

	case lexeme.IsSpecial(lexemes.SpecialOpenBrace):
		s.contexts = append(s.contexts, layoutContext{
			explicit: true,
		})

	case lexeme.IsSpecial(lexemes.SpecialCloseBrace):
		if len(s.contexts) == 0 || !s.contexts[len(s.contexts)-1].explicit {
			return lexerrs.New(lexerrs.ErrLayoutViolation, lexeme.Range).
				WithChar('}').
				WithDetail("no explicit block to close")
		}
		s.contexts = s.contexts[:len(s.contexts)-1]

	case isLayoutKeyword(lexeme.Lexeme):
		s.expectBlock = true
		s.blockIsLet = lexeme.IsRId(lexemes.RIdLet)

	}

	s.lastLine = lexeme.Range.End.Line
	s.emit(lexeme)
	return s.violation
}

// offside compares the first lexeme of a line against the implicit contexts.
// It reports whether a context opened by let was closed.
func (s *Stream) offside(lexeme lexemes.EnrichedLexeme) (closedLet bool) {
	column := lexeme.Range.Start.Column
	for len(s.contexts) > 0 {
		top := s.contexts[len(s.contexts)-1]
		if top.explicit {
			return
		}
		switch {
		case column == top.column:
			s.emit(virtual(lexemes.KindVirtualSep, lexeme.Range.Start))
			return
		case column < top.column:
			s.contexts = s.contexts[:len(s.contexts)-1]
			s.close(lexeme.Range.Start)
			closedLet = closedLet || top.let
		default:
			return
		}
	}
	return
}

// closeLet closes implicit contexts up to the innermost one opened by let
func (s *Stream) closeLet(loc source.Location) {
	for i := len(s.contexts) - 1; i >= 0; i-- {
		if s.contexts[i].explicit {
			return
		}
		if s.contexts[i].let {
			for len(s.contexts) > i {
				s.contexts = s.contexts[:len(s.contexts)-1]
				s.close(loc)
			}
			return
		}
	}
}

// enclosingColumn is the column of the innermost implicit context, zero if none or explicit
func (s *Stream) enclosingColumn() uint {
	if len(s.contexts) == 0 {
		return 0
	}
	return s.contexts[len(s.contexts)-1].column
}

func (s *Stream) open(loc source.Location, let bool) {
	s.contexts = append(s.contexts, layoutContext{
		let: let,
	})
	s.opens++
	s.emit(virtual(lexemes.KindVirtualOpen, loc))
}

func (s *Stream) close(loc source.Location) {
	s.closes++
	s.emit(virtual(lexemes.KindVirtualClose, loc))
}

func (s *Stream) emit(lexeme lexemes.EnrichedLexeme) {
	if s.options.Check && s.violation == nil {
		if lexeme.Range.Start.Offset < s.lastStart {
			s.violation = lexerrs.New(lexerrs.ErrLayoutViolation, lexeme.Range).
				WithDetail("%v starts before a previous lexeme", lexeme.Kind)
		}
		s.lastStart = lexeme.Range.Start.Offset
	}
	if lexeme.Kind.IsVirtual() {
		s.logger.Debug("virtual", "kind", lexeme.Kind, "location", lexeme.Range.Start)
	}
	s.pending = append(s.pending, lexeme)
}

func virtual(kind lexemes.Kind, loc source.Location) lexemes.EnrichedLexeme {
	return lexemes.EnrichedLexeme{
		Lexeme: lexemes.Virtual(kind),
		Range:  source.At(loc),
	}
}

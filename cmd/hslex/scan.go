package main

import (
	"fmt"

	"github.com/reusee/hslex/layout"
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/scanner"
	"github.com/reusee/hslex/source"
)

var flavours = []string{"raw", "located", "annotated", "layout"}

type lexer struct {
	flavour       string
	newTokenizer  scanner.NewTokenizer
	newStream     layout.NewStream
	layoutOptions layout.Options
	// nil keeps everything
	filter func(lexemes.EnrichedLexeme) (bool, error)
}

// scan renders one source, collected lexemes are returned with the error that stopped them
func (s *lexer) scan(src *source.Source) (doc document, collected []lexemes.EnrichedLexeme, err error) {
	doc.Source = src.Name

	add := func(l lexemes.EnrichedLexeme, located bool) error {
		if s.filter != nil {
			ok, err := s.filter(l)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		collected = append(collected, l)
		doc.Lexemes = append(doc.Lexemes, lexemeRecord(l, located))
		return nil
	}

	switch s.flavour {

	case "raw", "located":
		for l, err := range s.newTokenizer(src).All() {
			if err != nil {
				return doc, collected, err
			}
			if err := add(l, s.flavour == "located"); err != nil {
				return doc, collected, err
			}
		}

	case "annotated":
		for a, err := range layout.Annotate(s.newTokenizer(src), s.layoutOptions) {
			if err != nil {
				return doc, collected, err
			}
			if a.Marker != layout.MarkerNone {
				doc.Lexemes = append(doc.Lexemes, markerRecord(a))
				continue
			}
			if err := add(a.Lexeme, false); err != nil {
				return doc, collected, err
			}
		}

	case "layout":
		for l, err := range s.newStream(src).All() {
			if err != nil {
				return doc, collected, err
			}
			if err := add(l, true); err != nil {
				return doc, collected, err
			}
		}

	default:
		return doc, nil, fmt.Errorf("unknown flavour: %s", s.flavour)
	}

	return doc, collected, nil
}

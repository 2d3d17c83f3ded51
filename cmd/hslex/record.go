package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/hslex/layout"
	"github.com/reusee/hslex/lexemes"
	"go.yaml.in/yaml/v3"
)

// record is one output line, a lexeme or a layout marker
type record struct {
	Kind      string   `yaml:"kind" toml:"kind"`
	Text      string   `yaml:"text,omitempty" toml:"text,omitempty"`
	Value     string   `yaml:"value,omitempty" toml:"value,omitempty"`
	Exact     string   `yaml:"exact,omitempty" toml:"exact,omitempty"`
	Qualifier []string `yaml:"qualifier,omitempty" toml:"qualifier,omitempty"`
	Range     string   `yaml:"range,omitempty" toml:"range,omitempty"`

	line string
}

func lexemeRecord(l lexemes.EnrichedLexeme, located bool) record {
	r := record{
		Kind:  l.Kind.String(),
		Text:  l.Text,
		Value: l.Value(),
		line:  l.Lexeme.String(),
	}
	switch l.Kind {
	case lexemes.KindIdentifier, lexemes.KindOperator:
		r.Qualifier = l.Name.Qualifier
	case lexemes.KindFloat:
		r.Exact = l.Float.Rat().RatString()
	}
	if located {
		r.Range = l.Range.String()
		r.line = l.String()
	}
	return r
}

func markerRecord(a layout.Annotated) record {
	return record{
		Kind: a.String(),
		line: a.String(),
	}
}

type document struct {
	Source  string   `yaml:"source" toml:"source"`
	Lexemes []record `yaml:"lexemes" toml:"lexemes"`
}

type output struct {
	Files []document `yaml:"files" toml:"files"`
}

var formats = []string{"text", "yaml", "toml"}

func write(w io.Writer, format string, out output) error {
	switch format {

	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()

	case "toml":
		if err := toml.NewEncoder(w).Encode(out); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil

	}

	for _, doc := range out.Files {
		if len(out.Files) > 1 {
			if _, err := fmt.Fprintf(w, "== %s\n", doc.Source); err != nil {
				return err
			}
		}
		var b strings.Builder
		for _, r := range doc.Lexemes {
			b.WriteString(r.line)
			b.WriteByte('\n')
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

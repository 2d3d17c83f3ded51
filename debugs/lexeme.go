package debugs

import (
	"github.com/reusee/hslex/lexemes"
)

// Fields flattens a lexeme into script values.
func Fields(l lexemes.EnrichedLexeme) map[string]any {
	fields := map[string]any{
		"kind":       l.Kind.String(),
		"text":       l.Text,
		"value":      l.Value(),
		"line":       l.Range.Start.Line,
		"column":     l.Range.Start.Column,
		"end_line":   l.Range.End.Line,
		"end_column": l.Range.End.Column,
		"offset":     l.Range.Start.Offset,
		"virtual":    l.Kind.IsVirtual(),
		"qualifier":  []string{},
		"base":       "",
		"integer":    nil,
	}
	switch l.Kind {
	case lexemes.KindIdentifier, lexemes.KindOperator:
		fields["qualifier"] = l.Name.Qualifier
		fields["base"] = l.Name.Base
	case lexemes.KindInteger:
		fields["integer"] = l.Integer
	}
	return fields
}

func isReserved(name string) bool {
	if _, ok := lexemes.LookupRId(name); ok {
		return true
	}
	_, ok := lexemes.LookupROp(name)
	return ok
}

package layout

import (
	"github.com/reusee/hslex/lexemes"
	"github.com/samber/lo"
)

// layoutContext is an entry of the context stack.
// Explicit contexts come from a literal {, implicit ones from a layout keyword.
type layoutContext struct {
	explicit bool
	column   uint
	// opened by let, closed by a matching in
	let bool
}

var layoutKeywords = []lexemes.RId{
	lexemes.RIdLet,
	lexemes.RIdWhere,
	lexemes.RIdDo,
	lexemes.RIdOf,
}

func isLayoutKeyword(lexeme lexemes.Lexeme) bool {
	return lexeme.Kind == lexemes.KindReservedId &&
		lo.Contains(layoutKeywords, lexeme.RId)
}

package debugs

import (
	"fmt"
	"maps"

	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/logs"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Filter compiles a Starlark expression over lexeme fields into a predicate.
type Filter func(expr string) (func(lexemes.EnrichedLexeme) (bool, error), error)

func builtins() starlark.StringDict {
	return starlark.StringDict{
		"is_reserved": starlarkutil.MakeFunc("is_reserved", isReserved),
	}
}

func (Module) Filter(
	logger logs.Logger,
) Filter {
	return func(expr string) (func(lexemes.EnrichedLexeme) (bool, error), error) {
		options := &syntax.FileOptions{}
		if _, err := options.ParseExpr("filter", expr, 0); err != nil {
			return nil, fmt.Errorf("parse filter: %w", err)
		}
		logger.Debug("filter", "expr", expr)

		thread := &starlark.Thread{
			Name: "filter",
		}
		predeclared := builtins()

		return func(lexeme lexemes.EnrichedLexeme) (bool, error) {
			env := maps.Clone(predeclared)
			for name, value := range Fields(lexeme) {
				env[name] = toStarlarkValue(value)
			}
			value, err := starlark.EvalOptions(options, thread, "filter", expr, env)
			if err != nil {
				return false, fmt.Errorf("eval filter at %v: %w", lexeme.Range, err)
			}
			return bool(value.Truth()), nil
		}, nil
	}
}

package scanner

import (
	"github.com/reusee/dscope"
	"github.com/reusee/hslex/hsconfigs"
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/logs"
	"github.com/reusee/hslex/source"
)

type Module struct {
	dscope.Module
	Configs hsconfigs.Module
}

func (Module) Options(
	tabWidth hsconfigs.TabWidth,
	maxExponent hsconfigs.MaxExponent,
	modules lexemes.ModuleLookup,
) Options {
	return Options{
		TabWidth:    int(tabWidth),
		MaxExponent: int(maxExponent),
		Modules:     modules,
	}
}

// ModuleLookup resolves nothing by default, applications may provide a table
func (Module) ModuleLookup() lexemes.ModuleLookup {
	return nil
}

type NewTokenizer func(src *source.Source) *Tokenizer

func (Module) NewTokenizer(
	options Options,
	logger logs.Logger,
) NewTokenizer {
	return func(src *source.Source) *Tokenizer {
		return New(
			src,
			options,
			logger.With("source", src.Name),
		)
	}
}

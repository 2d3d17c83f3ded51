package layout

import (
	"github.com/reusee/dscope"
	"github.com/reusee/hslex/hsconfigs"
	"github.com/reusee/hslex/logs"
	"github.com/reusee/hslex/modes"
	"github.com/reusee/hslex/scanner"
	"github.com/reusee/hslex/source"
)

type Module struct {
	dscope.Module
	Scanner scanner.Module
}

func (Module) Options(
	topLevel hsconfigs.TopLevelLayout,
	mode modes.Mode,
) Options {
	return Options{
		TopLevel: bool(topLevel),
		Check:    mode.IsDevelopment(),
	}
}

type NewStream func(src *source.Source) *Stream

func (Module) NewStream(
	newTokenizer scanner.NewTokenizer,
	options Options,
	logger logs.Logger,
) NewStream {
	return func(src *source.Source) *Stream {
		return New(
			newTokenizer(src),
			options,
			logger.With("source", src.Name),
		)
	}
}

package layout

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/hslex/configs"
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/modes"
	"github.com/reusee/hslex/source"
)

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		newStream NewStream,
		options Options,
	) {
		if !options.Check {
			t.Fatal("checks should be on in tests")
		}
		if options.TopLevel {
			t.Fatal()
		}
		stream := newStream(source.New("test", "where\n\tx"))
		var kinds []lexemes.Kind
		for lexeme, err := range stream.All() {
			if err != nil {
				t.Fatal(err)
			}
			kinds = append(kinds, lexeme.Kind)
		}
		if len(kinds) != 5 || kinds[1] != lexemes.KindVirtualOpen || kinds[3] != lexemes.KindVirtualClose {
			t.Fatalf("got %v", kinds)
		}
	})
}

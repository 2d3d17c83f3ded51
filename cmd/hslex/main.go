package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/hslex/cmds"
	"github.com/reusee/hslex/debugs"
	"github.com/reusee/hslex/layout"
	"github.com/reusee/hslex/lexemes"
	"github.com/reusee/hslex/lexerrs"
	"github.com/reusee/hslex/logs"
	"github.com/reusee/hslex/modes"
	"github.com/reusee/hslex/scanner"
	"github.com/reusee/hslex/source"
	"github.com/reusee/hslex/vars"
	"github.com/samber/lo"
	"golang.org/x/term"
)

var (
	fileFlags   = cmds.Collect[string]("-file", "source file, repeatable, standard input when absent")
	flavourFlag = cmds.Var[string]("-flavour", "raw, located, annotated or layout (default)")
	formatFlag  = cmds.Var[string]("-format", "text (default), yaml or toml")
	filterFlag  = cmds.Var[string]("-filter", "Starlark expression over kind, text, value, line, column, qualifier, base and integer")
	tapFlag     = cmds.Switch("-tap", "open a Starlark REPL over the printed lexemes")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	flavour := vars.FirstNonZero(*flavourFlag, "layout")
	if !lo.Contains(flavours, flavour) {
		fmt.Fprintf(os.Stderr, "unknown flavour %q, expecting one of %v\n", flavour, flavours)
		os.Exit(2)
	}
	format := vars.FirstNonZero(*formatFlag, "text")
	if !lo.Contains(formats, format) {
		fmt.Fprintf(os.Stderr, "unknown format %q, expecting one of %v\n", format, formats)
		os.Exit(2)
	}

	failed := false
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newTokenizer scanner.NewTokenizer,
		newStream layout.NewStream,
		layoutOptions layout.Options,
		filter debugs.Filter,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		s := &lexer{
			flavour:       flavour,
			newTokenizer:  newTokenizer,
			newStream:     newStream,
			layoutOptions: layoutOptions,
		}
		if *filterFlag != "" {
			pred, err := filter(*filterFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			s.filter = pred
		}

		sources, err := readSources(*fileFlags)
		if err != nil {
			logger.ErrorContext(ctx, "read sources", "error", logs.WrapSpan(ctx, err))
			failed = true
			return
		}

		var out output
		var all []lexemes.EnrichedLexeme
		for _, src := range sources {
			doc, collected, err := s.scan(src)
			out.Files = append(out.Files, doc)
			all = append(all, collected...)
			if err != nil {
				failed = true
				if lexErr, ok := lexerrs.As(err); ok {
					fmt.Fprint(os.Stderr, lexErr.Render(src))
				} else {
					logger.ErrorContext(ctx, "scan",
						"source", src.Name,
						"error", logs.WrapSpan(ctx, err),
					)
				}
			}
			logger.InfoContext(ctx, "scanned",
				"source", src.Name,
				"records", len(doc.Lexemes),
			)
		}

		if err := write(os.Stdout, format, out); err != nil {
			logger.ErrorContext(ctx, "write", "error", logs.WrapSpan(ctx, err))
			failed = true
		}

		if *tapFlag {
			tap(ctx, "lexemes", map[string]any{
				"lexemes": lo.Map(all, func(l lexemes.EnrichedLexeme, _ int) map[string]any {
					return debugs.Fields(l)
				}),
			})
		}
	})

	if failed {
		os.Exit(1)
	}
}

var errNoInput = errors.New("no input, use -file or pipe a source to standard input")

func readSources(paths []string) ([]*source.Source, error) {
	if len(paths) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errNoInput
		}
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []*source.Source{
			source.New("<stdin>", string(content)),
		}, nil
	}

	sources := make([]*source.Source, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		sources = append(sources, source.New(path, string(content)))
	}
	return sources, nil
}

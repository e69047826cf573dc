package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/ptgen/forest"
	"github.com/npillmayer/ptgen/grammar"
	"github.com/npillmayer/ptgen/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// parseOptions collects the flags of the parse command.
type parseOptions struct {
	grammarFile string
	start       string
	verify      bool
	typst       bool
	pretty      bool
	unique      bool
	tokenizer   string
	stats       bool
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <sentence…>",
		Short: "Print all parse trees of a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(opts.grammarFile, opts.start, opts.verify)
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			tokens, err := tokenize(strings.Join(args, " "), opts.tokenizer)
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			return parseAndRender(os.Stdout, g, tokens, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.grammarFile, "grammar", "g", "", "EBNF grammar file (default: built-in grammar)")
	cmd.Flags().StringVarP(&opts.start, "start", "s", "S", "Start symbol")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Verify the grammar file for start symbol")
	cmd.Flags().BoolVar(&opts.typst, "typst", false, "Print Typst tree markup for every tree")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Draw trees on the terminal")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "Drop structurally identical trees")
	cmd.Flags().StringVar(&opts.tokenizer, "tokenizer", "words", "Tokenizer [words|go]")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print parser statistics")

	return cmd
}

// parseAndRender writes all parse trees for tokens to w. It returns errNoParse
// if there is none.
func parseAndRender(w io.Writer, g *grammar.Grammar, tokens []string, opts parseOptions) error {
	norm, diagnostics := grammar.RemoveEpsilons(g)
	for _, np := range diagnostics {
		tracer().Debugf("new production %s", np)
	}
	p := forest.NewParser(norm)
	trees, err := p.Parse(tokens, opts.start)
	if err != nil {
		return err
	}
	if opts.unique {
		trees = forest.Unique(trees)
	}
	if opts.stats {
		pterm.Info.Println(statsLine(trees, p.Stats()))
	}
	if len(trees) == 0 {
		fmt.Fprintln(w, "No parse tree for input")
		return errNoParse
	}
	if !opts.pretty {
		return render.Forest(w, trees, opts.typst)
	}
	for i, t := range trees {
		view, err := render.Pretty(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Parse tree %d:\n%s\n", i+1, view)
		if opts.typst {
			fmt.Fprintf(w, "Typst tree code %d:\n#%s\n", i+1, render.Typst(t))
		}
	}
	return nil
}

// statsLine summarizes a parse run: forest size, deepest tree and memo usage.
func statsLine(trees []forest.Tree, s forest.Stats) string {
	depth := 0
	for _, t := range trees {
		if d := forest.Depth(t); d > depth {
			depth = d
		}
	}
	return fmt.Sprintf("%d trees, max depth %d, %d calls, %d memo hits, %d memo entries",
		len(trees), depth, s.Calls, s.Hits, s.Entries)
}

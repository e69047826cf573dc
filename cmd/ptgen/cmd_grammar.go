package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/ptgen/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var grammarFile, start string
	var verify, normalized, dedupe bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print a grammar and the results of epsilon-removal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarFile, start, verify)
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			var opts []grammar.NormOption
			if dedupe {
				opts = append(opts, grammar.DedupeProductions())
			}
			return printGrammar(os.Stdout, g, normalized, opts...)
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file (default: built-in grammar)")
	cmd.Flags().StringVarP(&start, "start", "s", "S", "Start symbol (for --verify)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the grammar file for start symbol")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "Print the grammar after epsilon-removal")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Drop repeated productions during epsilon-removal")

	return cmd
}

// printGrammar writes g, its nullable non-terminals and the new productions
// resulting from epsilon-removal to w.
func printGrammar(w io.Writer, g *grammar.Grammar, normalized bool, opts ...grammar.NormOption) error {
	nullable := grammar.Nullable(g)
	norm, diagnostics := grammar.RemoveEpsilons(g, opts...)
	if normalized {
		g = norm
	}
	fmt.Fprintf(w, "Grammar %s, %d productions:\n%s\n", g.Name, g.Size(), g)
	fmt.Fprintf(w, "Terminals: %v\n", g.Terminals())
	fmt.Fprintf(w, "Nullable:  %v\n", nullable)
	if len(diagnostics) > 0 {
		fmt.Fprintln(w, "New productions:")
		for _, np := range diagnostics {
			fmt.Fprintf(w, "  %s\n", np)
		}
	}
	return nil
}

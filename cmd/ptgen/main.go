/*
Command ptgen enumerates all parse trees of a sentence for a context-free
grammar.

	ptgen parse the dog saw a cat in the park
	ptgen parse --typst --grammar english.ebnf --start S the dog barked
	ptgen grammar --normalized --grammar english.ebnf
	ptgen repl

Without --grammar, a small built-in grammar for English sentences with
prepositional phrases is used. It is ambiguous with respect to the attachment
of prepositional phrases, which makes it a good playground.

Tracing is configured with --trace (Error, Info or Debug). Configuration
values may also be loaded from a NestedText file given with --config, e.g.

	tracelevel:
	    root: Error
	    ptgen:
	        forest: Debug
	panic-on-span-violation: true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'ptgen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.cli")
}

// errNoParse signals an input without any parse tree. It results in exit
// status 1, without further messages.
var errNoParse = errors.New("no parse tree for input")

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoParse) {
			pterm.Error.Println(err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var settings configSettings
	rootCmd := &cobra.Command{
		Use:           "ptgen",
		Short:         "Enumerate all parse trees of a sentence",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings.traceChanged = cmd.Flags().Changed("trace")
			settings.panicChanged = cmd.Flags().Changed("panic-on-span-violation")
			return setupConfig(settings)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settings.traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	flags.StringVar(&settings.configFile, "config", "", "Configuration file (NestedText format)")
	flags.BoolVar(&settings.panicOnViolation, "panic-on-span-violation", false,
		"Panic on illegal calls to the span parser")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newReplCmd())
	return rootCmd
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

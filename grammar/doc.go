/*
Package grammar implements context-free grammars for the parse-forest generator.

A grammar maps non-terminal symbols to ordered lists of productions. Every
symbol occuring on a right hand side which is not itself a left hand side of
some production is a terminal. Terminals are matched literally against input
tokens. The reserved symbol ε, appearing as the single symbol of a
production, denotes the empty production.

Grammars are immutable once created. Clients may create them from a map,

	g, err := grammar.New("G", map[string][][]string{
		"S": {{"A", "b"}},
		"A": {{"a"}, {grammar.Epsilon}},
	})

with a builder,

	b := grammar.NewBuilder("G")
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()

or from an EBNF source (see LoadEBNF).

Normalization

The span parser of package forest cannot deal with empty productions. Before
parsing, grammars are therefore normalized by RemoveEpsilons, which computes
the set of nullable non-terminals and replaces every production by all
variants which keep or drop each nullable symbol. The language of the grammar
is preserved, except for the empty sentence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptgen.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.grammar")
}

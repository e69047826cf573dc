/*
Package forest enumerates all parse trees of a token sequence.

The parser of this package is a memoized, span-indexed recursive parser,
generalizing the CYK algorithm to productions of arbitrary length. For a
symbol A and a span (i…j) of the input it computes the set of all trees
rooted in A which derive exactly the tokens i to j-1:

  - a terminal derives a span of length 1 if it equals the token at i

  - a non-terminal A derives (i…j) by a production A → X1 … Xn if the span
    can be cut into n non-empty, consecutive sub-spans, with Xk deriving the
    k-th of them

For every production and every way of cutting the span, the sets of sub-trees
for the sub-spans are combined by forming their Cartesian product. Results are
kept in a memo table indexed by (symbol, i, j), which is what makes sharing
of sub-trees between trees of the forest possible: every tree in the forest
is a tree of its own, but sub-trees for the same symbol and span are
physically shared.

Grammars have to be free of epsilon-productions, as every symbol is required
to cover at least one token. Use ParseAllTrees to normalize a grammar and
parse in one step:

	g, _ := grammar.New("G", rules)
	trees, err := forest.ParseAllTrees(g, strings.Fields(sentence), "S")

Not finding any tree is not an error; the result will just be empty.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptgen.forest'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.forest")
}

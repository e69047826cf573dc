/*
Package ptgen enumerates every parse tree of a sentence for a context-free grammar.

Ptgen strives to be a small, exhaustive tool for exploring ambiguous grammars.
It does not pick a "best" parse tree, but produces the complete parse forest,
i.e. all distinct derivations of the input. Package structure is as follows:

■ grammar: Package grammar implements context-free grammars, together with
the normalization step which removes epsilon-productions, and a loader for
grammars written in EBNF.

■ forest: Package forest implements a memoized, span-indexed recursive parser
and the parse trees it produces.

■ render: Package render converts parse trees into indented text, tree-diagram
markup and terminal tree views.

■ scanner: Package scanner splits input sentences into tokens.

Command ptgen (in cmd/ptgen) offers parsing, grammar inspection and an
interactive mode on the command line.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptgen

/*
Package lexmach provides an adapter to use the lexmachine scanner generator
for tokenizing sentences.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The most common use is splitting a sentence into words, optionally treating
punctuation characters as tokens of their own:

	words, err := lexmach.Words("the dog saw a cat in the park")

	ws, err := lexmach.NewWordScanner(".", ",")
	scan, err := ws.Scanner("the dog barked, then it slept.")
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		…
	}

Clients who need more liberty in how to create the scanner may initialize
lexmachine with regular expressions of their own:

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   ptgen.Token
	}
	LM, err := NewLMAdapter(init, literals)

NewLMAdapter will return an error if compiling the DFA failed.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

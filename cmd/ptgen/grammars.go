package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ptgen"
	"github.com/npillmayer/ptgen/grammar"
	"github.com/npillmayer/ptgen/scanner"
	"github.com/npillmayer/ptgen/scanner/lexmach"
)

// We provide a small grammar for English sentences as a default. It is
// ambiguous with respect to the attachment of prepositional phrases.
//
//  S   ➞ NP VP
//  NP  ➞ Det N  |  NP PP
//  VP  ➞ V NP   |  VP PP
//  PP  ➞ P NP
//  Det ➞ the | a
//  N   ➞ cat | dog | telescope | park
//  V   ➞ saw | walked
//  P   ➞ in | with
//
func makePPGrammar() *grammar.Grammar {
	b := grammar.NewBuilder("PP")
	b.LHS("S").N("NP").N("VP").End()
	b.LHS("NP").N("Det").N("N").End()
	b.LHS("NP").N("NP").N("PP").End()
	b.LHS("VP").N("V").N("NP").End()
	b.LHS("VP").N("VP").N("PP").End()
	b.LHS("PP").N("P").N("NP").End()
	b.LHS("Det").T("the").End()
	b.LHS("Det").T("a").End()
	b.LHS("N").T("cat").End()
	b.LHS("N").T("dog").End()
	b.LHS("N").T("telescope").End()
	b.LHS("N").T("park").End()
	b.LHS("V").T("saw").End()
	b.LHS("V").T("walked").End()
	b.LHS("P").T("in").End()
	b.LHS("P").T("with").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

// loadGrammar returns the built-in grammar if path is empty, otherwise it
// loads an EBNF grammar file. If verify is set, the file is checked for
// undefined and unreachable productions, starting from start.
func loadGrammar(path string, start string, verify bool) (*grammar.Grammar, error) {
	if path == "" {
		return makePPGrammar(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var opts []grammar.LoadOption
	if verify {
		opts = append(opts, grammar.Verify(start))
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	g, err := grammar.LoadEBNF(name, f, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %s from %s", g.Name, path)
	return g, nil
}

// tokenize splits input into terminals. Tokenizer "words" splits at white
// space, "go" uses the Go scanner, which is handy for expression grammars.
func tokenize(input string, tokenizer string) ([]string, error) {
	switch tokenizer {
	case "", "words":
		return lexmach.Words(input)
	case "go":
		var scanErr error
		t := scanner.GoTokenizer("input", strings.NewReader(input))
		t.SetErrorHandler(func(err error) {
			if scanErr == nil {
				scanErr = err
			}
		})
		tokens := ptgen.Lexemes(scanner.Tokens(t))
		return tokens, scanErr
	}
	return nil, fmt.Errorf("unknown tokenizer: %s", tokenizer)
}

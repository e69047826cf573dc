/*
Package scanner defines an interface for scanners splitting input sentences
into tokens for the parsers of this module.

Parse trees are built over tokens, with terminals of a grammar matching token
lexemes literally. The canonical tokenization is splitting at white space
(see Fields). Two scanners implementing the Tokenizer interface are provided:
(1) a thin wrapper over the Go std lib 'text/scanner', accepting Go-like
tokens, and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/ptgen"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() ptgen.Token
	SetErrorHandler(func(error))
}

// Fields splits a sentence at white space. This is the canonical
// tokenization for sentences to be parsed.
func Fields(sentence string) []string {
	return strings.Fields(sentence)
}

// Tokens reads all tokens from a tokenizer, up to EOF.
func Tokens(t Tokenizer) []ptgen.Token {
	var tokens []ptgen.Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	tracer().Debugf("read %d tokens", len(tokens))
	return tokens
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// This is useful for sentences containing punctuation, operators or quoted strings.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() ptgen.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   ptgen.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   ptgen.Span{t.Position.Offset, t.Pos().Offset},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   ptgen.TokType
	lexeme string
	Val    interface{}
	span   ptgen.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ ptgen.TokType, lexeme string, span ptgen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() ptgen.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() ptgen.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q%s", t.lexeme, t.span)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenier.
type Option func(p *DefaultTokenizer)

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

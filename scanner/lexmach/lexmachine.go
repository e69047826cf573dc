package lexmach

import (
	"strings"
	"sync"

	"github.com/npillmayer/ptgen"
	"github.com/npillmayer/ptgen/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'ptgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ptgen.scanner")
}

// Token types produced by the word scanner.
const (
	Word ptgen.TokType = iota + 1
	Punct
)

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// to add patterns to the lexer, and a list of literals ('.', ';', …) which
// will be scanned as tokens of type Punct.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, int(Punct)))
	}
	init(adapter.Lexer)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// NewWordScanner creates an adapter which splits input at white space. Every
// character of punct will be a token of its own, even if it is not
// surrounded by white space.
func NewWordScanner(punct ...string) (*LMAdapter, error) {
	// \v and \f have no escape in lexmachine's syntax, so they go in as raw bytes
	class := "[^ \\t\\r\\n\v\f"
	for _, p := range punct {
		for _, r := range p {
			class += `\` + string(r)
		}
	}
	class += `]+`
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte("( |\\t|\\r|\\n|\v|\f)+"), Skip)
		lexer.Add([]byte(class), MakeToken("WORD", int(Word)))
	}
	var literals []string
	for _, p := range punct {
		for _, r := range p {
			literals = append(literals, string(r))
		}
	}
	return NewLMAdapter(init, literals)
}

var (
	words     *LMAdapter // compiled once, on first use
	wordsErr  error
	wordsOnce sync.Once
)

// Words splits a sentence into words at white space.
func Words(sentence string) ([]string, error) {
	wordsOnce.Do(func() {
		words, wordsErr = NewWordScanner()
	})
	if wordsErr != nil {
		return nil, wordsErr
	}
	scan, err := words.Scanner(sentence)
	if err != nil {
		return nil, err
	}
	return ptgen.Lexemes(scanner.Tokens(scan)), nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Token spans are byte
// positions of the input.
func (lms *LMScanner) NextToken() ptgen.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", ptgen.Span{0, 0})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %q @%d", token.Lexeme, token.TC)
	return scanner.MakeDefaultToken(
		ptgen.TokType(token.Type),
		string(token.Lexeme),
		ptgen.Span{token.TC, token.TC + len(token.Lexeme)},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

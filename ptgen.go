package ptgen

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a word token of an English sentence:
//
//    TokType = Word        // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "telescope" // lexeme how it appeared in the input stream
//    Value   = nil         // words do not carry a value
//    Span    = 27…36       // occured from byte position 27 in the input stream
//
// Parsers of this module match terminals against Token.Lexeme().
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Lexemes extracts the lexemes of a sequence of tokens, which is the form
// the span parser consumes.
func Lexemes(tokens []Token) []string {
	lexemes := make([]string, len(tokens))
	for i, t := range tokens {
		lexemes[i] = t.Lexeme()
	}
	return lexemes
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end, i.e. it is half-open.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y). Spans with To() ≤ From() have length 0.
func (s Span) Len() int {
	if s[1] <= s[0] {
		return 0
	}
	return s[1] - s[0]
}

// IsEmpty is true if the span covers no input position.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Check tests if a span is a legal sub-span of an input of n tokens, i.e.
// 0 ≤ from ≤ n and 0 ≤ to ≤ n. An inverted span (from > to) is legal; it
// covers nothing.
func (s Span) Check(n int) error {
	if s[0] < 0 || s[1] < 0 {
		return fmt.Errorf("negative span position in %s", s)
	}
	if s[0] > n || s[1] > n {
		return fmt.Errorf("span %s exceeds input length %d", s, n)
	}
	return nil
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

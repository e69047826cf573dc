package ptgen

import "testing"

func TestSpan(t *testing.T) {
	s := Span{2, 5}
	if s.From() != 2 || s.To() != 5 || s.Len() != 3 {
		t.Errorf("unexpected span accessors for %s", s)
	}
	if (Span{5, 2}).Len() != 0 || !(Span{5, 2}).IsEmpty() || !(Span{3, 3}).IsEmpty() {
		t.Errorf("inverted and zero-length spans should be empty")
	}
	if s.String() != "(2…5)" {
		t.Errorf("expected (2…5), have %s", s)
	}
}

func TestSpanCheck(t *testing.T) {
	for _, s := range []Span{{0, 0}, {0, 4}, {4, 4}, {3, 1}} {
		if err := s.Check(4); err != nil {
			t.Errorf("span %s should be legal for 4 tokens: %v", s, err)
		}
	}
	for _, s := range []Span{{-1, 2}, {0, 5}, {5, 5}, {2, -3}} {
		if err := s.Check(4); err == nil {
			t.Errorf("span %s should be illegal for 4 tokens", s)
		}
	}
}

type word string

func (w word) TokType() TokType   { return 1 }
func (w word) Lexeme() string     { return string(w) }
func (w word) Value() interface{} { return nil }
func (w word) Span() Span         { return Span{} }

func TestLexemes(t *testing.T) {
	lx := Lexemes([]Token{word("a"), word("cat")})
	if len(lx) != 2 || lx[0] != "a" || lx[1] != "cat" {
		t.Errorf("unexpected lexemes %v", lx)
	}
}

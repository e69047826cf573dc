package scanner

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		tokens := Tokens(GoTokenizer("test", strings.NewReader(input)))
		for _, token := range tokens {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestUnifyStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.scanner")
	defer teardown()
	//
	tokens := Tokens(GoTokenizer("test", strings.NewReader("'a' `b`"), UnifyStrings(true)))
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.TokType() != String {
			t.Errorf("expected %s to be unified to a string token", tok.Lexeme())
		}
	}
}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.scanner")
	defer teardown()
	//
	if f := Fields("  the\tdog \n barked "); strings.Join(f, "|") != "the|dog|barked" {
		t.Errorf("unexpected fields %v", f)
	}
	if len(Fields("   ")) != 0 {
		t.Errorf("blank input should have no fields")
	}
}

package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

//     S → A B c
//     A → a | ε
//     B → b | ε
//     C → A B
//     E → ε
//     X → A a | a
//
func makeEpsGrammar(t *testing.T) *Grammar {
	b := NewBuilder("Eps")
	b.LHS("S").N("A").N("B").T("c").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("C").N("A").N("B").End()
	b.LHS("E").Epsilon()
	b.LHS("X").N("A").T("a").End()
	b.LHS("X").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func prodStrings(prods []Production) string {
	s := make([]string, len(prods))
	for i, p := range prods {
		s[i] = p.String()
	}
	return strings.Join(s, " | ")
}

func TestNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.grammar")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	N := Nullable(g)
	if strings.Join(N, ",") != "A,B,C,E" {
		t.Errorf("expected nullable set {A,B,C,E}, got %v", N)
	}
	if len(Nullable(makePPGrammar(t))) != 0 {
		t.Errorf("PP grammar has no nullable symbols")
	}
}

func TestNullableChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.grammar")
	defer teardown()
	//
	// nullability has to propagate through several rounds
	g, err := New("chain", map[string][][]string{
		"A": {{"B", "B"}, {"x"}},
		"B": {{"C"}},
		"C": {{"D", "D", "D"}},
		"D": {{Epsilon}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(Nullable(g), ",") != "A,B,C,D" {
		t.Errorf("expected all non-terminals to be nullable, got %v", Nullable(g))
	}
}

func TestRemoveEpsilons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.grammar")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ng, diag := RemoveEpsilons(g)
	t.Logf("\n%s", ng)
	expected := map[string]string{
		"S": "c | B c | A c | A B c",
		"A": "a",
		"B": "b",
		"C": "B | A | A B",
		"E": "",
		"X": "a | A a | a",
	}
	for lhs, prods := range expected {
		if p := prodStrings(ng.Productions(lhs)); p != prods {
			t.Errorf("expected %s → %s, got %s", lhs, prods, p)
		}
	}
	if !ng.IsNonTerminal("E") || ng.IsTerminal("E") {
		t.Errorf("E must remain a non-terminal without productions")
	}
	for _, lhs := range ng.NonTerminals() {
		for _, rhs := range ng.Productions(lhs) {
			if len(rhs) == 0 || rhs.IsEpsilon() {
				t.Errorf("normalized grammar contains empty production for %s", lhs)
			}
		}
	}
	// X → A a is rewritten to X → a | A a, and the latter still lists A
	if len(diag) != 2 || diag[0].String() != "S → c" || diag[1].String() != "X → a" {
		t.Errorf("expected new productions [S → c X → a], got %v", diag)
	}
	if g.Size() != 9 || !g.Productions("A")[1].IsEpsilon() {
		t.Errorf("input grammar has been modified")
	}
}

func TestRemoveEpsilonsDedupe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.grammar")
	defer teardown()
	//
	ng, _ := RemoveEpsilons(makeEpsGrammar(t), DedupeProductions())
	if p := prodStrings(ng.Productions("X")); p != "a | A a" {
		t.Errorf("expected duplicates of X to be removed, got %s", p)
	}
}

func TestRemoveEpsilonsIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptgen.grammar")
	defer teardown()
	//
	g := makePPGrammar(t)
	ng, diag := RemoveEpsilons(g)
	if !ng.Equal(g) {
		t.Errorf("epsilon-free grammar should not change during normalization")
	}
	if len(diag) != 0 {
		t.Errorf("expected no new productions, got %v", diag)
	}
}

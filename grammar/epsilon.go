package grammar

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
)

// NewProduction is a diagnostic record, produced during normalization: the
// right hand side of a production with all nullable symbols removed.
type NewProduction struct {
	LHS string
	RHS Production
}

func (np NewProduction) String() string {
	return np.LHS + " → " + np.RHS.String()
}

// Nullable returns the non-terminals of g which derive the empty sentence,
// in lexical order.
func Nullable(g *Grammar) []string {
	values := nullableSet(g).Values()
	N := make([]string, len(values))
	for i, v := range values {
		N[i] = v.(string)
	}
	return N
}

// nullableSet is a fixpoint iteration. It starts with all non-terminals having
// an epsilon production, then adds every non-terminal with a production
// consisting entirely of nullable symbols, until nothing changes.
func nullableSet(g *Grammar) *treeset.Set {
	N := treeset.NewWithStringComparator()
	for _, lhs := range g.NonTerminals() {
		for _, rhs := range g.Productions(lhs) {
			if rhs.IsEpsilon() {
				N.Add(lhs)
				break
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for _, lhs := range g.NonTerminals() {
			if N.Contains(lhs) {
				continue
			}
			for _, rhs := range g.Productions(lhs) {
				if allNullable(rhs, N) {
					N.Add(lhs)
					changed = true
					break
				}
			}
		}
	}
	return N
}

func allNullable(rhs Production, N *treeset.Set) bool {
	for _, sym := range rhs {
		if !N.Contains(sym) {
			return false
		}
	}
	return true
}

// NormOption configures RemoveEpsilons.
type NormOption func(*normalizer)

type normalizer struct {
	dedupe bool
}

// DedupeProductions lets RemoveEpsilons drop repeated productions of a
// non-terminal, keeping the first occurence. Without it, duplicates which
// result from expanding different productions are kept, and the parser will
// report the corresponding trees more than once.
func DedupeProductions() NormOption {
	return func(n *normalizer) {
		n.dedupe = true
	}
}

// RemoveEpsilons creates an epsilon-free grammar from g.
//
// Every pure epsilon production is removed. Every other production is replaced
// by all variants which keep or drop each occurence of a nullable symbol;
// non-nullable symbols are always kept. A variant which would be empty is
// discarded. Non-terminals stay non-terminals, even if no production is left
// for them.
//
// The second return value is a diagnostic list, computed on the new grammar:
// for each production containing a nullable symbol, the production with all
// nullable symbols stripped, if non-empty and not listed before. It does not
// influence parsing.
func RemoveEpsilons(g *Grammar, opts ...NormOption) (*Grammar, []NewProduction) {
	norm := &normalizer{}
	for _, opt := range opts {
		opt(norm)
	}
	N := nullableSet(g)
	tracer().Debugf("nullable non-terminals of %s: %v", g.Name, N.Values())
	rules := linkedhashmap.New()
	for _, lhs := range g.NonTerminals() {
		prods := make([]Production, 0, len(g.Productions(lhs)))
		for _, rhs := range g.Productions(lhs) {
			if rhs.IsEpsilon() {
				continue
			}
			for _, variant := range expandNullable(rhs, N) {
				if len(variant) == 0 {
					continue
				}
				if norm.dedupe && containsProduction(prods, variant) {
					continue
				}
				prods = append(prods, variant)
			}
		}
		rules.Put(lhs, prods)
	}
	ng, err := newGrammar(g.Name, rules)
	if err != nil { // cannot happen for a valid input grammar
		panic(err)
	}
	diagnostics := newProductions(ng, N)
	for _, np := range diagnostics {
		tracer().Debugf("new production %s", np)
	}
	return ng, diagnostics
}

// expandNullable recurses over head and tail of rhs. For a nullable head, all
// variants without it are listed before all variants with it.
func expandNullable(rhs Production, N *treeset.Set) []Production {
	if len(rhs) == 0 {
		return []Production{{}}
	}
	head := rhs[0]
	rest := expandNullable(rhs[1:], N)
	variants := make([]Production, 0, 2*len(rest))
	if N.Contains(head) {
		variants = append(variants, rest...)
	}
	for _, r := range rest {
		v := make(Production, 0, len(r)+1)
		v = append(v, head)
		variants = append(variants, append(v, r...))
	}
	return variants
}

func containsProduction(prods []Production, p Production) bool {
	for _, q := range prods {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

func newProductions(g *Grammar, N *treeset.Set) []NewProduction {
	list := arraylist.New()
	seen := treeset.NewWithStringComparator()
	for _, lhs := range g.NonTerminals() {
		for _, rhs := range g.Productions(lhs) {
			stripped := make(Production, 0, len(rhs))
			for _, sym := range rhs {
				if !N.Contains(sym) {
					stripped = append(stripped, sym)
				}
			}
			if len(stripped) == len(rhs) || len(stripped) == 0 {
				continue
			}
			key := lhs + "\x00" + strings.Join(stripped, "\x00")
			if seen.Contains(key) {
				continue
			}
			seen.Add(key)
			list.Add(NewProduction{LHS: lhs, RHS: stripped})
		}
	}
	nps := make([]NewProduction, list.Size())
	for i, v := range list.Values() {
		nps[i] = v.(NewProduction)
	}
	return nps
}

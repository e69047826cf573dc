package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
)

// Epsilon is the reserved marker for the empty production. It is never a
// terminal and may only occur as the single symbol of a right hand side.
const Epsilon = "ε"

// Errors returned from grammar construction.
var (
	ErrEpsilonPosition = errors.New("epsilon must be the only symbol of a production")
	ErrEmptySymbol     = errors.New("empty symbol name")
	ErrNoProductions   = errors.New("non-terminal has no productions")
	ErrTerminalIsLHS   = errors.New("terminal occurs as left hand side")
)

// Production is the right hand side of a grammar rule, i.e. a sequence of
// symbols.
type Production []string

// IsEpsilon is true for the pure epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == Epsilon
}

// Equals compares two productions symbol by symbol.
func (p Production) Equals(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i, sym := range p {
		if other[i] != sym {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	if len(p) == 0 {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Grammar is a context-free grammar. A Grammar is immutable once created and
// may be shared between parsers.
type Grammar struct {
	Name      string
	rules     *linkedhashmap.Map // non-terminal → []Production, in definition order
	terminals *treeset.Set       // computed once at creation time
}

// New creates a grammar from a map of non-terminals to their productions.
// As Go maps are unordered, non-terminals will be kept in alphabetical order.
// The order of productions for a non-terminal is preserved. An empty
// production is interpreted as the epsilon production.
//
// New copies its input; clients are free to modify rules afterwards.
func New(name string, rules map[string][][]string) (*Grammar, error) {
	keys := make([]string, 0, len(rules))
	for lhs := range rules {
		keys = append(keys, lhs)
	}
	sort.Strings(keys)
	m := linkedhashmap.New()
	for _, lhs := range keys {
		prods := make([]Production, len(rules[lhs]))
		for i, rhs := range rules[lhs] {
			prods[i] = append(Production(nil), rhs...)
		}
		m.Put(lhs, prods)
	}
	return newGrammar(name, m)
}

func newGrammar(name string, rules *linkedhashmap.Map) (*Grammar, error) {
	g := &Grammar{Name: name, rules: rules}
	it := rules.Iterator()
	for it.Next() {
		lhs := it.Key().(string)
		if lhs == "" {
			return nil, fmt.Errorf("grammar %s: %w", name, ErrEmptySymbol)
		}
		if lhs == Epsilon {
			return nil, fmt.Errorf("grammar %s: %s used as left hand side: %w", name, Epsilon, ErrEpsilonPosition)
		}
		prods := it.Value().([]Production)
		for i, rhs := range prods {
			if len(rhs) == 0 {
				prods[i] = Production{Epsilon}
				continue
			}
			for _, sym := range rhs {
				if sym == "" {
					return nil, fmt.Errorf("grammar %s, %s → %v: %w", name, lhs, rhs, ErrEmptySymbol)
				}
				if sym == Epsilon && len(rhs) > 1 {
					return nil, fmt.Errorf("grammar %s, %s → %v: %w", name, lhs, rhs, ErrEpsilonPosition)
				}
			}
		}
	}
	g.terminals = g.collectTerminals()
	return g, nil
}

func (g *Grammar) collectTerminals() *treeset.Set {
	T := treeset.NewWithStringComparator()
	it := g.rules.Iterator()
	for it.Next() {
		for _, rhs := range it.Value().([]Production) {
			for _, sym := range rhs {
				if sym == Epsilon {
					continue
				}
				if _, isNT := g.rules.Get(sym); !isNT {
					T.Add(sym)
				}
			}
		}
	}
	return T
}

// NonTerminals returns the left hand sides of g, in definition order.
func (g *Grammar) NonTerminals() []string {
	keys := g.rules.Keys()
	nts := make([]string, len(keys))
	for i, k := range keys {
		nts[i] = k.(string)
	}
	return nts
}

// Productions returns the productions for non-terminal nt, or nil if nt is
// not a non-terminal of g. Clients must treat the result as read-only.
func (g *Grammar) Productions(nt string) []Production {
	if prods, ok := g.rules.Get(nt); ok {
		return prods.([]Production)
	}
	return nil
}

// IsNonTerminal is true if sym is a left hand side of g. This holds even if
// sym has no productions left (which may happen after normalization).
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules.Get(sym)
	return ok
}

// IsTerminal is true if sym occurs in a right hand side of g and is not a
// non-terminal. Epsilon is not a terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// Terminals returns the terminal symbols of g in lexical order.
func (g *Grammar) Terminals() []string {
	values := g.terminals.Values()
	T := make([]string, len(values))
	for i, v := range values {
		T[i] = v.(string)
	}
	return T
}

// Size returns the number of productions of g.
func (g *Grammar) Size() int {
	n := 0
	for _, v := range g.rules.Values() {
		n += len(v.([]Production))
	}
	return n
}

// Equal is true if g and other have the same non-terminals and, for each of
// them, the same productions in the same order. Names and the order of
// non-terminals are not considered.
func (g *Grammar) Equal(other *Grammar) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rules.Size() != other.rules.Size() {
		return false
	}
	it := g.rules.Iterator()
	for it.Next() {
		p1 := it.Value().([]Production)
		v, ok := other.rules.Get(it.Key())
		if !ok {
			return false
		}
		p2 := v.([]Production)
		if len(p1) != len(p2) {
			return false
		}
		for i := range p1 {
			if !p1[i].Equals(p2[i]) {
				return false
			}
		}
	}
	return true
}

// Dump is a debugging helper: it dumps the productions of g to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	n := 0
	for _, lhs := range g.NonTerminals() {
		for _, rhs := range g.Productions(lhs) {
			tracer().Debugf("%3d: %s → %s", n, lhs, rhs)
			n++
		}
	}
	tracer().Debugf("terminals = %v", g.Terminals())
	tracer().Debugf("-------------------------------------------------------")
}

// String lists all productions, grouped by non-terminal, one per line:
//
//	NP → Det N
//	   | NP PP
//
func (g *Grammar) String() string {
	var b strings.Builder
	for _, lhs := range g.NonTerminals() {
		prods := g.Productions(lhs)
		if len(prods) == 0 {
			fmt.Fprintf(&b, "%s → ∅\n", lhs)
			continue
		}
		indent := strings.Repeat(" ", len([]rune(lhs)))
		for i, rhs := range prods {
			if i == 0 {
				fmt.Fprintf(&b, "%s → %s\n", lhs, rhs)
			} else {
				fmt.Fprintf(&b, "%s | %s\n", indent, rhs)
			}
		}
	}
	return b.String()
}

// --- Builder ---------------------------------------------------------------

// Builder is used to construct a grammar rule by rule. Non-terminals are
// introduced with LHS and kept in the order of their first appearance.
//
//	b := NewBuilder("G")
//	b.LHS("S").N("NP").N("VP").End()
//	b.LHS("Det").T("the").End()
//	g, err := b.Grammar()
//
type Builder struct {
	name     string
	rules    *linkedhashmap.Map
	declared *treeset.Set // symbols declared as non-terminals with N(…)
	terms    *treeset.Set // symbols declared as terminals with T(…)
}

// NewBuilder creates a builder for a grammar called name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		rules:    linkedhashmap.New(),
		declared: treeset.NewWithStringComparator(),
		terms:    treeset.NewWithStringComparator(),
	}
}

// RuleBuilder collects the right hand side of a single production.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs Production
}

// LHS starts a new production for non-terminal nt.
func (b *Builder) LHS(nt string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: nt}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.b.declared.Add(sym)
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.b.terms.Add(sym)
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// End finishes the production and adds it to the grammar under construction.
func (rb *RuleBuilder) End() Production {
	var prods []Production
	if v, ok := rb.b.rules.Get(rb.lhs); ok {
		prods = v.([]Production)
	}
	rb.b.rules.Put(rb.lhs, append(prods, rb.rhs))
	return rb.rhs
}

// Epsilon finishes an epsilon production. Symbols added before are discarded.
func (rb *RuleBuilder) Epsilon() Production {
	rb.rhs = Production{Epsilon}
	return rb.End()
}

// Grammar returns the grammar built so far. It checks that every symbol
// declared with N(…) has productions and that no symbol declared with T(…)
// has.
func (b *Builder) Grammar() (*Grammar, error) {
	for _, v := range b.declared.Values() {
		if _, ok := b.rules.Get(v); !ok {
			return nil, fmt.Errorf("grammar %s, %s: %w", b.name, v, ErrNoProductions)
		}
	}
	for _, v := range b.terms.Values() {
		if _, ok := b.rules.Get(v); ok {
			return nil, fmt.Errorf("grammar %s, %s: %w", b.name, v, ErrTerminalIsLHS)
		}
	}
	// copy the rules, the builder may continue to be used
	m := linkedhashmap.New()
	it := b.rules.Iterator()
	for it.Next() {
		prods := it.Value().([]Production)
		m.Put(it.Key(), append([]Production(nil), prods...))
	}
	return newGrammar(b.name, m)
}

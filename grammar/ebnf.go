package grammar

import (
	"fmt"
	"io"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/ebnf"
)

// LoadOption configures LoadEBNF.
type LoadOption func(*ebnfLoader)

// Verify lets LoadEBNF check the EBNF source with start symbol start: every
// name used is defined, and every production is reachable from start.
func Verify(start string) LoadOption {
	return func(l *ebnfLoader) {
		l.verifyStart = start
	}
}

// LoadEBNF reads a grammar in the EBNF dialect of package golang.org/x/exp/ebnf.
//
//	S   = NP VP .
//	NP  = Det N | NP PP .
//	Det = "the" | "a" .
//	Opt = .
//
// Production names are non-terminals and string literals are terminals. An
// empty production, as well as the reserved name ε, denote the empty
// production. Options, repetitions, groups and character ranges nested in a
// production are replaced by anonymous non-terminals, named after the
// production they occur in (e.g. "NP·1"):
//
//	[ x ]    →   A·n = x | ε
//	{ x }    →   A·n = x A·n | ε
//	( x|y )  →   A·n = x | y
//	"a"…"c"  →   A·n = "a" | "b" | "c"
//
// Non-terminals are kept in the order of their appearance in the source.
// Names without a production are terminals matching the name literally.
func LoadEBNF(name string, r io.Reader, opts ...LoadOption) (*Grammar, error) {
	l := &ebnfLoader{rules: linkedhashmap.New(), anon: make(map[string]int)}
	for _, opt := range opts {
		opt(l)
	}
	src, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	if l.verifyStart != "" {
		_, defined := src[Epsilon]
		if !defined && refersTo(src, Epsilon) {
			src[Epsilon] = &ebnf.Production{Name: &ebnf.Name{String: Epsilon}}
			defer delete(src, Epsilon)
		}
		if err = ebnf.Verify(src, l.verifyStart); err != nil {
			return nil, fmt.Errorf("grammar %s: %w", name, err)
		}
	}
	prods := make([]*ebnf.Production, 0, len(src))
	for _, p := range src {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		pi, pj := prods[i].Pos(), prods[j].Pos()
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Column < pj.Column
	})
	l.src = src
	for _, p := range prods {
		lhs := p.Name.String
		if lhs == Epsilon {
			continue
		}
		l.rules.Put(lhs, []Production(nil)) // reserve position
		alts, err := l.alternatives(lhs, p.Expr)
		if err != nil {
			return nil, fmt.Errorf("grammar %s: %w", name, err)
		}
		l.rules.Put(lhs, alts)
	}
	g, err := newGrammar(name, l.rules)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded grammar %s with %d productions", name, g.Size())
	return g, nil
}

type ebnfLoader struct {
	src         ebnf.Grammar
	rules       *linkedhashmap.Map
	anon        map[string]int // counter of anonymous non-terminals per production
	verifyStart string
}

func (l *ebnfLoader) alternatives(lhs string, expr ebnf.Expression) ([]Production, error) {
	switch x := expr.(type) {
	case nil:
		return []Production{{Epsilon}}, nil
	case ebnf.Alternative:
		var alts []Production
		for _, e := range x {
			a, err := l.alternatives(lhs, e)
			if err != nil {
				return nil, err
			}
			alts = append(alts, a...)
		}
		return alts, nil
	case ebnf.Sequence:
		rhs := make(Production, 0, len(x))
		for _, e := range x {
			sym, err := l.symbol(lhs, e)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sym)
		}
		return []Production{rhs}, nil
	case *ebnf.Group:
		return l.alternatives(lhs, x.Body)
	}
	sym, err := l.symbol(lhs, expr)
	if err != nil {
		return nil, err
	}
	return []Production{{sym}}, nil
}

// symbol returns the grammar symbol for an element of a sequence, creating
// anonymous non-terminals as needed.
func (l *ebnfLoader) symbol(lhs string, expr ebnf.Expression) (string, error) {
	switch x := expr.(type) {
	case *ebnf.Name:
		return x.String, nil
	case *ebnf.Token:
		if _, isNT := l.src[x.String]; isNT {
			tracer().Infof("%s: terminal %q shadowed by production of same name", x.Pos(), x.String)
		}
		return x.String, nil
	case *ebnf.Range:
		from, to := []rune(x.Begin.String), []rune(x.End.String)
		if len(from) != 1 || len(to) != 1 || from[0] > to[0] {
			return "", fmt.Errorf("%s: illegal character range", x.Pos())
		}
		var alts []Production
		for r := from[0]; r <= to[0]; r++ {
			alts = append(alts, Production{string(r)})
		}
		return l.anonymous(lhs, alts), nil
	case *ebnf.Option:
		alts, err := l.alternatives(lhs, x.Body)
		if err != nil {
			return "", err
		}
		return l.anonymous(lhs, append(alts, Production{Epsilon})), nil
	case *ebnf.Repetition:
		nt := l.anonymous(lhs, nil)
		alts, err := l.alternatives(lhs, x.Body)
		if err != nil {
			return "", err
		}
		for i := range alts {
			if alts[i].IsEpsilon() {
				continue
			}
			alts[i] = append(append(Production(nil), alts[i]...), nt)
		}
		l.rules.Put(nt, append(alts, Production{Epsilon}))
		return nt, nil
	case *ebnf.Group, ebnf.Alternative, ebnf.Sequence:
		alts, err := l.alternatives(lhs, x)
		if err != nil {
			return "", err
		}
		return l.anonymous(lhs, alts), nil
	case *ebnf.Bad:
		return "", fmt.Errorf("%s: %s", x.Pos(), x.Error)
	}
	return "", fmt.Errorf("unexpected EBNF expression %T", expr)
}

func (l *ebnfLoader) anonymous(lhs string, alts []Production) string {
	l.anon[lhs]++
	nt := fmt.Sprintf("%s·%d", lhs, l.anon[lhs])
	l.rules.Put(nt, append([]Production{}, alts...))
	return nt
}

// refersTo is true if any production of src uses name.
func refersTo(src ebnf.Grammar, name string) bool {
	var uses func(ebnf.Expression) bool
	uses = func(expr ebnf.Expression) bool {
		switch x := expr.(type) {
		case *ebnf.Name:
			return x.String == name
		case ebnf.Alternative:
			for _, e := range x {
				if uses(e) {
					return true
				}
			}
		case ebnf.Sequence:
			for _, e := range x {
				if uses(e) {
					return true
				}
			}
		case *ebnf.Group:
			return uses(x.Body)
		case *ebnf.Option:
			return uses(x.Body)
		case *ebnf.Repetition:
			return uses(x.Body)
		}
		return false
	}
	for _, p := range src {
		if uses(p.Expr) {
			return true
		}
	}
	return false
}

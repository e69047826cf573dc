package forest

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ptgen"
	"github.com/npillmayer/ptgen/grammar"
	"github.com/npillmayer/ptgen/scanner/lexmach"
	"github.com/npillmayer/schuko/gconf"
)

// Errors reported by the parser. Both indicate a programming error rather than
// an input which is not part of the language.
var (
	ErrSpan   = errors.New("illegal span")
	ErrCyclic = errors.New("cyclic derivation")
)

// Parser is a memoizing span parser for a grammar without epsilon-productions.
// Create one with NewParser.
//
// A Parser may be re-used for more than one input, but it is not safe for
// concurrent use.
type Parser struct {
	g         *grammar.Grammar
	tokens    []string
	memo      map[memoKey][]Tree
	active    map[memoKey]struct{} // keys currently under computation
	err       error                // first error encountered during a parse run
	memoize   bool
	normalize bool
	distinct  bool
	stats     Stats
}

type memoKey struct {
	symbol   string
	from, to int
}

func (k memoKey) String() string {
	return fmt.Sprintf("%s%s", k.symbol, ptgen.Span{k.from, k.to})
}

// Stats collects counts for the most recent parse run.
type Stats struct {
	Calls   int // number of (symbol, span) requests
	Hits    int // requests answered from the memo table
	Entries int // entries in the memo table at the end of the run
}

// Option configures a parser.
type Option func(p *Parser)

// WithoutMemo disables memoization: every (symbol, span) pair is recomputed
// whenever it is requested. The results are identical to a memoizing parser,
// but run time will be exponential for all but the smallest inputs. This is
// intended for cross-checking only.
func WithoutMemo() Option {
	return func(p *Parser) {
		p.memoize = false
	}
}

// Normalize sets wether ParseAllTrees and ParseSentence remove epsilon-
// productions from the grammar before parsing (default is true).
func Normalize(b bool) Option {
	return func(p *Parser) {
		p.normalize = b
	}
}

// Distinct lets ParseAllTrees and ParseSentence drop trees which are
// structurally identical to a tree found earlier. Duplicates are possible if
// the grammar contains identical productions for a non-terminal, which may
// be a result of normalization.
func Distinct() Option {
	return func(p *Parser) {
		p.distinct = true
	}
}

// NewParser creates a parser for grammar g. g must not contain epsilon-
// productions (see grammar.RemoveEpsilons).
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:         g,
		memoize:   true,
		normalize: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats returns the statistics of the most recent parse run.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Parse returns all trees for symbol start covering the complete input.
func (p *Parser) Parse(tokens []string, start string) ([]Tree, error) {
	return p.ParseSpan(tokens, start, 0, len(tokens))
}

// ParseSpan returns all trees for symbol over the span (i…j) of tokens.
// The order of the trees is deterministic: trees are listed by production
// (in grammar order), then by split (in lexicographic order of cut positions),
// then by the combination of sub-trees.
//
// An empty result is not an error. An error is returned if the span is not
// within the bounds of the input, or if the grammar allows a symbol to derive
// itself over the same span, which would result in an infinite number of
// trees.
func (p *Parser) ParseSpan(tokens []string, symbol string, i, j int) ([]Tree, error) {
	if err := (ptgen.Span{i, j}).Check(len(tokens)); err != nil {
		return nil, violation(fmt.Errorf("%w: %v", ErrSpan, err))
	}
	p.tokens = append(p.tokens[:0], tokens...)
	p.memo = make(map[memoKey][]Tree)
	p.active = make(map[memoKey]struct{})
	p.err = nil
	p.stats = Stats{}
	trees := p.parse(symbol, i, j)
	p.stats.Entries = len(p.memo)
	tracer().Debugf("%s%s: %d trees, %d calls, %d memo hits", symbol, ptgen.Span{i, j},
		len(trees), p.stats.Calls, p.stats.Hits)
	if p.err != nil {
		return nil, p.err
	}
	return trees, nil
}

func (p *Parser) parse(symbol string, i, j int) []Tree {
	p.stats.Calls++
	if i >= j || p.err != nil {
		return nil
	}
	if !p.g.IsNonTerminal(symbol) {
		if p.g.IsTerminal(symbol) {
			return p.match(symbol, i, j)
		}
		return nil // unknown symbols match nothing
	}
	key := memoKey{symbol, i, j}
	if p.memoize {
		if trees, ok := p.memo[key]; ok {
			p.stats.Hits++
			return trees
		}
	}
	if _, ok := p.active[key]; ok {
		p.err = violation(fmt.Errorf("%w: %s derives itself", ErrCyclic, key))
		return nil
	}
	p.active[key] = struct{}{}
	var trees []Tree
	for _, rhs := range p.g.Productions(symbol) {
		trees = append(trees, p.derive(symbol, rhs, i, j)...)
	}
	delete(p.active, key)
	if p.memoize {
		if _, ok := p.memo[key]; !ok { // first writer wins
			p.memo[key] = trees
		}
	}
	if len(trees) > 0 {
		tracer().Debugf("%s → %d trees", key, len(trees))
	}
	return trees
}

// match checks a terminal against the input.
func (p *Parser) match(terminal string, i, j int) []Tree {
	if j-i == 1 && p.tokens[i] == terminal {
		return []Tree{&Leaf{Symbol: terminal}}
	}
	return nil
}

// derive collects the trees for a single production lhs → rhs over (i…j).
func (p *Parser) derive(lhs string, rhs grammar.Production, i, j int) []Tree {
	var trees []Tree
	if len(rhs) == 1 {
		for _, child := range p.parse(rhs[0], i, j) {
			trees = append(trees, &Internal{Symbol: lhs, Children: []Tree{child}})
		}
		return trees
	}
	sets := make([][]Tree, len(rhs))
	for _, cuts := range EnumerateSplits(i, j, len(rhs)) {
		bounds := subspans(i, j, cuts)
		complete := true
		for k, sym := range rhs {
			if sets[k] = p.parse(sym, bounds[k], bounds[k+1]); len(sets[k]) == 0 {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		for _, children := range CartesianProduct(sets) {
			trees = append(trees, &Internal{Symbol: lhs, Children: children})
		}
	}
	return trees
}

func violation(err error) error {
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-span-violation") {
		panic(`Parser contract violated.

Configuration flag panic-on-span-violation is set to true. It is aimed at helping
to debug clients of the parser and do a post-mortem of illegal calls. If you did
not expect this to panic, please unset panic-on-span-violation to its default (false).

` + err.Error())
	}
	return err
}

// --- Top level API ---------------------------------------------------------

// ParseAllTrees normalizes grammar g and returns all parse trees for start
// which cover the complete token sequence.
func ParseAllTrees(g *grammar.Grammar, tokens []string, start string, opts ...Option) ([]Tree, error) {
	p := NewParser(g, opts...)
	if p.normalize {
		var diagnostics []grammar.NewProduction
		p.g, diagnostics = grammar.RemoveEpsilons(g)
		tracer().Debugf("normalized grammar %s, %d new productions", g.Name, len(diagnostics))
	}
	trees, err := p.Parse(tokens, start)
	if err != nil {
		return nil, err
	}
	if p.distinct {
		trees = Unique(trees)
	}
	tracer().Infof("%d parse trees for %q", len(trees), tokens)
	return trees, nil
}

// ParseSentence splits a sentence into words at white space and calls
// ParseAllTrees.
func ParseSentence(g *grammar.Grammar, sentence string, start string, opts ...Option) ([]Tree, error) {
	words, err := lexmach.Words(sentence)
	if err != nil {
		return nil, err
	}
	return ParseAllTrees(g, words, start, opts...)
}

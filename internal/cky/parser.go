// Package cky implements a CKY chart parser over CNF grammars.
//
// The parser fills a triangular chart bottom-up: single tokens from terminal
// productions, then every longer span from binary productions over two
// adjacent shorter spans. Each cell keeps every distinct tree for its span,
// so ambiguity is preserved rather than collapsed.
package cky

import (
	"strings"
	"time"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dusk-indust/cky/internal/grammar"
	"github.com/dusk-indust/cky/internal/parsetree"
)

// DefaultStartSymbol is the symbol a full-span tree must be rooted at.
const DefaultStartSymbol = "S"

// Parser decides derivability of sentences against one grammar. A Parser
// holds no per-sentence state and may be used from many goroutines.
type Parser struct {
	grammar *grammar.Grammar
	start   string
	workers int
	log     commonlog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithStartSymbol overrides DefaultStartSymbol.
func WithStartSymbol(symbol string) Option {
	return func(p *Parser) {
		if symbol != "" {
			p.start = symbol
		}
	}
}

// WithWorkers fills the cells of each span length with up to n goroutines.
// Span lengths are still processed strictly in order. n <= 1 fills
// sequentially.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		p.workers = n
	}
}

// WithLogger sets the logger used for fill progress.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// New returns a Parser for g.
func New(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar: g,
		start:   DefaultStartSymbol,
		workers: 1,
		log:     commonlog.GetLogger("cky.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// StartSymbol returns the symbol a derivation must be rooted at.
func (p *Parser) StartSymbol() string {
	return p.start
}

// Tokenize splits a sentence on whitespace. Tokens are kept verbatim.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// Recognize reports whether sentence is derivable from g's default start
// symbol.
func Recognize(g *grammar.Grammar, sentence string) bool {
	return New(g).Parse(sentence).Derivable()
}

// Parse tokenizes sentence and parses the tokens.
func (p *Parser) Parse(sentence string) *Result {
	return p.ParseTokens(Tokenize(sentence))
}

// ParseTokens builds the chart for tokens. An empty token list yields a
// Result that is not derivable and has no chart.
func (p *Parser) ParseTokens(tokens []string) *Result {
	res := &Result{
		Tokens: append([]string(nil), tokens...),
		Start:  p.start,
	}
	n := len(tokens)
	if n == 0 {
		return res
	}

	began := time.Now()
	chart := newChart(n)
	res.chart = chart

	for i, word := range res.Tokens {
		res.stats.Lookups++
		for _, nt := range p.grammar.NonTerminalsFor(word) {
			chart.cells[i][i].Add(parsetree.Preterminal(nt, word))
		}
	}

	for length := 2; length <= n; length++ {
		res.stats.Lookups += p.fillLength(chart, length)
		p.log.Debugf("span length %d/%d filled", length, n)
	}

	res.stats.collect(chart)
	p.log.Debugf("parsed %d tokens in %s: %d candidates, derivable=%t",
		n, time.Since(began), res.stats.Candidates, res.Derivable())
	return res
}

// fillLength fills every cell whose span has the given length and returns
// the number of grammar lookups made. Cells of one length only read cells
// of shorter lengths, so each one can be filled independently.
func (p *Parser) fillLength(chart *Chart, length int) int {
	starts := chart.n - length + 1
	lookups := make([]int, starts)

	if p.workers <= 1 || starts == 1 {
		for i := 0; i < starts; i++ {
			lookups[i] = p.fillCell(chart, i, i+length-1)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(p.workers)
		for i := 0; i < starts; i++ {
			g.Go(func() error {
				lookups[i] = p.fillCell(chart, i, i+length-1)
				return nil
			})
		}
		_ = g.Wait()
	}

	total := 0
	for _, l := range lookups {
		total += l
	}
	return total
}

// fillCell combines every split [i,k] + [k+1,j] into cell [i,j].
func (p *Parser) fillCell(chart *Chart, i, j int) int {
	cell := chart.cells[i][j]
	lookups := 0
	for k := i; k < j; k++ {
		left, right := chart.cells[i][k], chart.cells[k+1][j]
		if left.Empty() || right.Empty() {
			continue
		}
		for _, l := range left.nodes {
			for _, r := range right.nodes {
				lookups++
				for _, lhs := range p.grammar.NonTerminalsFor(l.Symbol, r.Symbol) {
					cell.Add(parsetree.Branch(lhs, l, r))
				}
			}
		}
	}
	return lookups
}

package cky

import (
	"sort"

	"github.com/dusk-indust/cky/internal/parsetree"
)

// Result is the outcome of parsing one sentence.
type Result struct {
	// Tokens is the tokenized sentence.
	Tokens []string

	// Start is the symbol the full span was checked for.
	Start string

	chart *Chart
	stats Stats
}

// Stats summarizes the work done for a parse.
type Stats struct {
	Tokens     int `json:"tokens"`
	Cells      int `json:"cells"`
	Filled     int `json:"filled"`
	Candidates int `json:"candidates"`
	Lookups    int `json:"lookups"`
}

func (s *Stats) collect(c *Chart) {
	s.Tokens = c.n
	for i := 0; i < c.n; i++ {
		for j := i; j < c.n; j++ {
			s.Cells++
			if l := c.cells[i][j].Len(); l > 0 {
				s.Filled++
				s.Candidates += l
			}
		}
	}
}

// Chart returns the filled chart, or nil for an empty sentence.
func (r *Result) Chart() *Chart {
	return r.chart
}

// Stats returns fill statistics.
func (r *Result) Stats() Stats {
	return r.stats
}

// Derivable reports whether the full span has a tree rooted at Start.
func (r *Result) Derivable() bool {
	if r.chart == nil {
		return false
	}
	return r.chart.Cell(0, r.chart.n-1).Contains(r.Start)
}

// Trees returns every distinct tree rooted at Start over the full span,
// ordered by canonical key. The trees are copies.
func (r *Result) Trees() []parsetree.Node {
	if r.chart == nil {
		return nil
	}
	roots := r.chart.Cell(0, r.chart.n-1).BySymbol(r.Start)
	if len(roots) == 0 {
		return nil
	}

	type keyed struct {
		key  string
		node parsetree.Node
	}
	ks := make([]keyed, len(roots))
	for i, n := range roots {
		ks[i] = keyed{key: n.Key(), node: n}
	}
	sort.Slice(ks, func(a, b int) bool { return ks[a].key < ks[b].key })

	out := make([]parsetree.Node, len(ks))
	for i, k := range ks {
		out[i] = k.node.Clone()
	}
	return out
}

// Witness returns one tree rooted at Start over the full span. Which tree
// is returned for an ambiguous sentence is unspecified.
func (r *Result) Witness() (parsetree.Node, bool) {
	trees := r.Trees()
	if len(trees) == 0 {
		return parsetree.Node{}, false
	}
	return trees[0], true
}

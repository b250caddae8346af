package cky

import (
	"fmt"
	"sort"

	"github.com/dusk-indust/cky/internal/parsetree"
)

// Cell is the set of candidate trees deriving one span. Members are unique by
// parsetree.Node.Key and kept in insertion order.
type Cell struct {
	nodes []parsetree.Node
	keys  map[string]bool
}

func newCell() *Cell {
	return &Cell{keys: make(map[string]bool)}
}

// Add inserts n unless an identical tree is already present. It reports
// whether n was added.
func (c *Cell) Add(n parsetree.Node) bool {
	k := n.Key()
	if c.keys[k] {
		return false
	}
	c.keys[k] = true
	c.nodes = append(c.nodes, n)
	return true
}

// Len returns the number of distinct candidates.
func (c *Cell) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// Empty reports whether the cell has no candidates.
func (c *Cell) Empty() bool {
	return c.Len() == 0
}

// Nodes returns the candidates. The slice is shared with the cell and must
// not be modified.
func (c *Cell) Nodes() []parsetree.Node {
	if c == nil {
		return nil
	}
	return c.nodes
}

// Contains reports whether some candidate is rooted at symbol.
func (c *Cell) Contains(symbol string) bool {
	for _, n := range c.Nodes() {
		if n.Symbol == symbol {
			return true
		}
	}
	return false
}

// BySymbol returns the candidates rooted at symbol.
func (c *Cell) BySymbol(symbol string) []parsetree.Node {
	var out []parsetree.Node
	for _, n := range c.Nodes() {
		if n.Symbol == symbol {
			out = append(out, n)
		}
	}
	return out
}

// Symbols returns the sorted root symbols present in the cell.
func (c *Cell) Symbols() []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range c.Nodes() {
		if !seen[n.Symbol] {
			seen[n.Symbol] = true
			out = append(out, n.Symbol)
		}
	}
	sort.Strings(out)
	return out
}

// Chart is the triangular table of cells for one sentence. Cell(i, j) covers
// tokens i through j inclusive.
type Chart struct {
	n     int
	cells [][]*Cell
}

func newChart(n int) *Chart {
	cells := make([][]*Cell, n)
	for i := range cells {
		cells[i] = make([]*Cell, n)
		for j := i; j < n; j++ {
			cells[i][j] = newCell()
		}
	}
	return &Chart{n: n, cells: cells}
}

// Size returns the number of tokens the chart covers.
func (c *Chart) Size() int {
	return c.n
}

// Cell returns the cell for span [i, j]. It panics unless 0 <= i <= j < Size().
func (c *Chart) Cell(i, j int) *Cell {
	if i < 0 || j < i || j >= c.n {
		panic(fmt.Sprintf("cky: span [%d, %d] outside chart of size %d", i, j, c.n))
	}
	return c.cells[i][j]
}

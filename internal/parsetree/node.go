// Package parsetree defines parse tree values produced by the chart parser.
//
// A Node owns its children outright. Two nodes are the same tree iff they
// have the same symbol and recursively equal children; Key returns a
// canonical string for that identity.
package parsetree

import (
	"strconv"
	"strings"
)

// Node is a parse tree node. Leaves hold a word and have no children;
// preterminals have a single leaf child; inner nodes have two children.
type Node struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Children []Node `json:"children" yaml:"children"`
}

// Leaf returns a childless node holding word.
func Leaf(word string) Node {
	return Node{Symbol: word}
}

// Preterminal returns symbol wrapping a single leaf for word.
func Preterminal(symbol, word string) Node {
	return Node{Symbol: symbol, Children: []Node{Leaf(word)}}
}

// Branch returns symbol over left and right.
func Branch(symbol string, left, right Node) Node {
	return Node{Symbol: symbol, Children: []Node{left, right}}
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	c := Node{Symbol: n.Symbol}
	if len(n.Children) > 0 {
		c.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Equal reports structural equality.
func (n Node) Equal(o Node) bool {
	if n.Symbol != o.Symbol || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical serialization of n. Symbols are length-prefixed so
// that no choice of symbol text can make two different trees share a key.
func (n Node) Key() string {
	var sb strings.Builder
	n.writeKey(&sb)
	return sb.String()
}

func (n Node) writeKey(sb *strings.Builder) {
	sb.WriteString(strconv.Itoa(len(n.Symbol)))
	sb.WriteByte(':')
	sb.WriteString(n.Symbol)
	if len(n.Children) == 0 {
		return
	}
	sb.WriteByte('(')
	for _, c := range n.Children {
		c.writeKey(sb)
	}
	sb.WriteByte(')')
}

// Leaves returns the leaf symbols from left to right.
func (n Node) Leaves() []string {
	var out []string
	n.collectLeaves(&out)
	return out
}

func (n Node) collectLeaves(out *[]string) {
	if n.IsLeaf() {
		*out = append(*out, n.Symbol)
		return
	}
	for _, c := range n.Children {
		c.collectLeaves(out)
	}
}

// Sentence joins the leaves with single spaces.
func (n Node) Sentence() string {
	return strings.Join(n.Leaves(), " ")
}

// Depth is the number of nodes on the longest root-to-leaf path.
func (n Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Size is the total number of nodes.
func (n Node) Size() int {
	s := 1
	for _, c := range n.Children {
		s += c.Size()
	}
	return s
}

// String renders n in bracketed form, e.g. (S (A a) (B b)).
func (n Node) String() string {
	if n.IsLeaf() {
		return n.Symbol
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(n.Symbol)
	for _, c := range n.Children {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

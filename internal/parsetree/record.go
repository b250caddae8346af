package parsetree

import (
	"errors"
	"fmt"
)

// Record is the nested form of a tree handed to persistence. Leaves carry
// an empty, non-nil Children slice so they encode as "children": [].
type Record struct {
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Children []Record `json:"children" yaml:"children"`
}

// Record converts n into its nested record form.
func (n Node) Record() Record {
	r := Record{Symbol: n.Symbol, Children: make([]Record, len(n.Children))}
	for i, c := range n.Children {
		r.Children[i] = c.Record()
	}
	return r
}

// FromRecord rebuilds a Node from r. Records with an empty symbol or more
// than two children are rejected.
func FromRecord(r Record) (Node, error) {
	if r.Symbol == "" {
		return Node{}, errors.New("record has an empty symbol")
	}
	if len(r.Children) > 2 {
		return Node{}, fmt.Errorf("record %q has %d children, at most 2 allowed", r.Symbol, len(r.Children))
	}
	n := Node{Symbol: r.Symbol}
	if len(r.Children) > 0 {
		n.Children = make([]Node, len(r.Children))
		for i, c := range r.Children {
			child, err := FromRecord(c)
			if err != nil {
				return Node{}, fmt.Errorf("%s: %w", r.Symbol, err)
			}
			n.Children[i] = child
		}
	}
	return n, nil
}

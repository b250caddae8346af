// Package grammar holds context-free grammars in Chomsky Normal Form.
//
// A Grammar maps each nonterminal to its productions. Every production has
// exactly one symbol (a terminal) or exactly two symbols (nonterminals). The
// grammar is immutable once built and is safe for concurrent use.
package grammar

import (
	"sort"
)

// Production is the right-hand side of a rule: one terminal or two
// nonterminals.
type Production []string

// IsTerminal reports whether p rewrites to a single terminal.
func (p Production) IsTerminal() bool {
	return len(p) == 1
}

// IsBinary reports whether p rewrites to two nonterminals.
func (p Production) IsBinary() bool {
	return len(p) == 2
}

// Rules maps a left-hand-side nonterminal to its productions in declared order.
type Rules map[string][]Production

// rhsKey identifies a right-hand side for the reverse index. second is only
// meaningful when binary is true.
type rhsKey struct {
	first  string
	second string
	binary bool
}

func keyOf(p Production) rhsKey {
	if len(p) == 2 {
		return rhsKey{first: p[0], second: p[1], binary: true}
	}
	return rhsKey{first: p[0]}
}

// Grammar is an immutable CNF rule store with a reverse index from
// right-hand sides to the nonterminals that produce them.
type Grammar struct {
	rules     Rules
	lhs       []string
	terminals []string
	index     map[rhsKey][]string
	size      int
}

// New validates rules and builds a Grammar. The rules are deep copied, so
// later changes to the argument do not affect the Grammar.
//
// A production whose length is not 1 or 2, or that contains an empty symbol,
// is rejected with a *MalformedProductionError.
func New(rules Rules) (*Grammar, error) {
	g := &Grammar{
		rules: make(Rules, len(rules)),
		index: make(map[rhsKey][]string),
	}

	lhsNames := make([]string, 0, len(rules))
	for lhs := range rules {
		lhsNames = append(lhsNames, lhs)
	}
	sort.Strings(lhsNames)

	terminals := make(map[string]bool)
	seen := make(map[rhsKey]map[string]bool)

	for _, lhs := range lhsNames {
		prods := rules[lhs]
		if lhs == "" {
			return nil, &MalformedProductionError{LHS: lhs, Index: -1, Reason: "empty left-hand side"}
		}
		copied := make([]Production, 0, len(prods))
		for i, p := range prods {
			if err := validate(lhs, i, p); err != nil {
				return nil, err
			}
			cp := make(Production, len(p))
			copy(cp, p)
			copied = append(copied, cp)
			g.size++

			if cp.IsTerminal() {
				terminals[cp[0]] = true
			}

			k := keyOf(cp)
			if seen[k] == nil {
				seen[k] = make(map[string]bool)
			}
			if !seen[k][lhs] {
				seen[k][lhs] = true
				// lhsNames is sorted, so each index entry stays sorted.
				g.index[k] = append(g.index[k], lhs)
			}
		}
		g.rules[lhs] = copied
	}

	g.lhs = lhsNames
	g.terminals = make([]string, 0, len(terminals))
	for t := range terminals {
		g.terminals = append(g.terminals, t)
	}
	sort.Strings(g.terminals)

	return g, nil
}

func validate(lhs string, i int, p Production) error {
	if len(p) != 1 && len(p) != 2 {
		return &MalformedProductionError{
			LHS:        lhs,
			Index:      i,
			Production: append(Production(nil), p...),
			Reason:     "production must have 1 or 2 symbols",
		}
	}
	for _, s := range p {
		if s == "" {
			return &MalformedProductionError{
				LHS:        lhs,
				Index:      i,
				Production: append(Production(nil), p...),
				Reason:     "empty symbol",
			}
		}
	}
	return nil
}

// NonTerminalsFor returns the nonterminals with a production exactly equal
// to seq. seq must hold one symbol (a word) or two symbols (nonterminals);
// any other length matches nothing. The result is sorted and free of
// duplicates, and must not be modified by the caller.
func (g *Grammar) NonTerminalsFor(seq ...string) []string {
	switch len(seq) {
	case 1:
		return g.index[rhsKey{first: seq[0]}]
	case 2:
		return g.index[rhsKey{first: seq[0], second: seq[1], binary: true}]
	default:
		return nil
	}
}

// Has reports whether lhs has at least one production.
func (g *Grammar) Has(lhs string) bool {
	return len(g.rules[lhs]) > 0
}

// Productions returns a copy of the productions of lhs in declared order.
func (g *Grammar) Productions(lhs string) []Production {
	prods := g.rules[lhs]
	if len(prods) == 0 {
		return nil
	}
	out := make([]Production, len(prods))
	for i, p := range prods {
		out[i] = append(Production(nil), p...)
	}
	return out
}

// NonTerminals returns the sorted left-hand sides of the grammar.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.lhs...)
}

// Terminals returns the sorted set of words that appear in unary productions.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// Len returns the total number of productions.
func (g *Grammar) Len() int {
	return g.size
}

// Rules returns a deep copy of the grammar's rules.
func (g *Grammar) Rules() Rules {
	out := make(Rules, len(g.rules))
	for _, lhs := range g.lhs {
		out[lhs] = g.Productions(lhs)
	}
	return out
}

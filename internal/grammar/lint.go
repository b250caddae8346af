package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// IssueKind classifies a lint finding.
type IssueKind string

const (
	IssueMissingStart    IssueKind = "missing-start"
	IssueUndefinedSymbol IssueKind = "undefined-symbol"
	IssueUnreachable     IssueKind = "unreachable"
	IssueDuplicate       IssueKind = "duplicate"
)

// Issue is a non-fatal problem found by Lint. A grammar with issues still
// parses; the issues only point at rules that can never contribute.
type Issue struct {
	Kind        IssueKind `json:"kind"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Description)
}

// Lint checks g against start and returns its findings sorted by kind and
// symbol.
func Lint(g *Grammar, start string) []Issue {
	var issues []Issue

	if !g.Has(start) {
		issues = append(issues, Issue{
			Kind:        IssueMissingStart,
			Symbol:      start,
			Description: fmt.Sprintf("start symbol %q has no productions", start),
		})
	}

	undefined := make(map[string][]string)
	for _, lhs := range g.lhs {
		seen := make(map[rhsKey]bool)
		for _, p := range g.rules[lhs] {
			k := keyOf(p)
			if seen[k] {
				issues = append(issues, Issue{
					Kind:        IssueDuplicate,
					Symbol:      lhs,
					Description: fmt.Sprintf("%s -> %s is declared more than once", lhs, strings.Join(p, " ")),
				})
			}
			seen[k] = true

			if !p.IsBinary() {
				continue
			}
			for _, s := range p {
				if !g.Has(s) {
					undefined[s] = appendUnique(undefined[s], lhs)
				}
			}
		}
	}
	for sym, users := range undefined {
		issues = append(issues, Issue{
			Kind:        IssueUndefinedSymbol,
			Symbol:      sym,
			Description: fmt.Sprintf("%q is used by %s but has no productions", sym, strings.Join(users, ", ")),
		})
	}

	if g.Has(start) {
		reached := reachable(g, start)
		for _, lhs := range g.lhs {
			if !reached[lhs] {
				issues = append(issues, Issue{
					Kind:        IssueUnreachable,
					Symbol:      lhs,
					Description: fmt.Sprintf("%q cannot be reached from %q", lhs, start),
				})
			}
		}
	}

	sort.Slice(issues, func(a, b int) bool {
		if issues[a].Kind != issues[b].Kind {
			return issues[a].Kind < issues[b].Kind
		}
		if issues[a].Symbol != issues[b].Symbol {
			return issues[a].Symbol < issues[b].Symbol
		}
		return issues[a].Description < issues[b].Description
	})
	return issues
}

// reachable walks binary productions from start.
func reachable(g *Grammar, start string) map[string]bool {
	seen := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		sym := queue[0]
		queue = queue[1:]
		for _, p := range g.rules[sym] {
			if !p.IsBinary() {
				continue
			}
			for _, s := range p {
				if !seen[s] {
					seen[s] = true
					queue = append(queue, s)
				}
			}
		}
	}
	return seen
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

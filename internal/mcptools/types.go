package mcptools

import (
	"github.com/dusk-indust/cky/internal/catalog"
	"github.com/dusk-indust/cky/internal/cky"
	"github.com/dusk-indust/cky/internal/grammar"
)

// --- MCP Tool Input/Output Types ---
// The MCP Go SDK derives each tool's JSON schema from these struct tags.

// ParseSentenceInput is the input for the parse_sentence MCP tool.
type ParseSentenceInput struct {
	Sentence    string `json:"sentence" jsonschema:"the sentence to parse, tokens separated by whitespace"`
	Grammar     string `json:"grammar,omitempty" jsonschema:"grammar name or path (default: the configured default grammar)"`
	StartSymbol string `json:"startSymbol,omitempty" jsonschema:"symbol the whole sentence must derive from (default: S)"`
	All         bool   `json:"all,omitempty" jsonschema:"return every distinct parse tree instead of only the witness"`
}

// ParseSentenceOutput is the result of the parse_sentence MCP tool. Trees
// are carried as JSON documents so the output schema stays flat.
type ParseSentenceOutput struct {
	Grammar   string    `json:"grammar"`
	Tokens    []string  `json:"tokens"`
	Derivable bool      `json:"derivable"`
	Tree      string    `json:"tree,omitempty"`
	Bracketed string    `json:"bracketed,omitempty"`
	TreeCount int       `json:"treeCount"`
	Trees     []string  `json:"trees,omitempty"`
	Stats     cky.Stats `json:"stats"`
}

// ListGrammarsInput is the input for the list_grammars MCP tool.
type ListGrammarsInput struct{}

// ListGrammarsOutput is the result of the list_grammars MCP tool.
type ListGrammarsOutput struct {
	Grammars []catalog.Entry `json:"grammars"`
}

// ShowGrammarInput is the input for the show_grammar MCP tool.
type ShowGrammarInput struct {
	Grammar string `json:"grammar" jsonschema:"grammar name or path"`
}

// ShowGrammarOutput is the result of the show_grammar MCP tool.
type ShowGrammarOutput struct {
	Name         string          `json:"name"`
	NonTerminals []string        `json:"nonTerminals"`
	Terminals    []string        `json:"terminals"`
	Productions  int             `json:"productions"`
	Issues       []grammar.Issue `json:"issues,omitempty"`
	Text         string          `json:"text"`
}

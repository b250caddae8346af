package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tliron/commonlog"

	"github.com/dusk-indust/cky/internal/catalog"
	"github.com/dusk-indust/cky/internal/cky"
	"github.com/dusk-indust/cky/internal/export"
	"github.com/dusk-indust/cky/internal/grammar"
)

// Config holds the defaults applied to tool calls that leave fields empty.
type Config struct {
	DefaultGrammar string
	StartSymbol    string
	Workers        int
}

// GrammarService holds the grammar catalog used by MCP tool handlers.
type GrammarService struct {
	catalog *catalog.Catalog
	cfg     Config
	log     commonlog.Logger
}

// NewGrammarService creates a GrammarService over cat.
func NewGrammarService(cat *catalog.Catalog, cfg Config) *GrammarService {
	if cfg.StartSymbol == "" {
		cfg.StartSymbol = cky.DefaultStartSymbol
	}
	return &GrammarService{
		catalog: cat,
		cfg:     cfg,
		log:     commonlog.GetLogger("cky.mcp"),
	}
}

func (s *GrammarService) grammarName(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	if s.cfg.DefaultGrammar == "" {
		return "", fmt.Errorf("grammar is required (no default grammar configured)")
	}
	return s.cfg.DefaultGrammar, nil
}

// ParseSentence runs the CKY parser over one sentence.
func (s *GrammarService) ParseSentence(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseSentenceInput,
) (*mcp.CallToolResult, ParseSentenceOutput, error) {
	name, err := s.grammarName(input.Grammar)
	if err != nil {
		return nil, ParseSentenceOutput{}, err
	}
	g, err := s.catalog.Load(name)
	if err != nil {
		return nil, ParseSentenceOutput{}, err
	}

	start := input.StartSymbol
	if start == "" {
		start = s.cfg.StartSymbol
	}
	parser := cky.New(g, cky.WithStartSymbol(start), cky.WithWorkers(s.cfg.Workers))
	res := parser.Parse(input.Sentence)

	out := ParseSentenceOutput{
		Grammar:   name,
		Tokens:    res.Tokens,
		Derivable: res.Derivable(),
		Stats:     res.Stats(),
	}
	if out.Tokens == nil {
		out.Tokens = []string{}
	}

	trees := res.Trees()
	out.TreeCount = len(trees)
	if len(trees) > 0 {
		tree, err := export.MarshalTree(trees[0])
		if err != nil {
			return nil, ParseSentenceOutput{}, err
		}
		out.Tree = string(tree)
		out.Bracketed = trees[0].String()
	}
	if input.All {
		for _, t := range trees {
			out.Trees = append(out.Trees, t.String())
		}
	}

	s.log.Infof("parse_sentence grammar=%s tokens=%d derivable=%t trees=%d",
		name, len(out.Tokens), out.Derivable, out.TreeCount)
	return nil, out, nil
}

// ListGrammars returns the grammars known to the catalog.
func (s *GrammarService) ListGrammars(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListGrammarsInput,
) (*mcp.CallToolResult, ListGrammarsOutput, error) {
	entries, err := s.catalog.List()
	if err != nil {
		return nil, ListGrammarsOutput{}, fmt.Errorf("list grammars: %w", err)
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	return nil, ListGrammarsOutput{Grammars: entries}, nil
}

// ShowGrammar describes a grammar and reports lint issues against the
// configured start symbol.
func (s *GrammarService) ShowGrammar(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ShowGrammarInput,
) (*mcp.CallToolResult, ShowGrammarOutput, error) {
	name := strings.TrimSpace(input.Grammar)
	if name == "" {
		return nil, ShowGrammarOutput{}, fmt.Errorf("grammar is required")
	}
	g, err := s.catalog.Load(name)
	if err != nil {
		return nil, ShowGrammarOutput{}, err
	}
	text, err := s.catalog.Text(name)
	if err != nil {
		return nil, ShowGrammarOutput{}, err
	}
	return nil, ShowGrammarOutput{
		Name:         name,
		NonTerminals: g.NonTerminals(),
		Terminals:    g.Terminals(),
		Productions:  g.Len(),
		Issues:       grammar.Lint(g, s.cfg.StartSymbol),
		Text:         text,
	}, nil
}

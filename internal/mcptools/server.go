package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewGrammarMCPServer creates an MCP server with the grammar tools registered:
// parse_sentence, list_grammars and show_grammar.
func NewGrammarMCPServer(svc *GrammarService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "cky",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_sentence",
		Description: "Parse a whitespace-separated sentence with a CNF grammar using the CKY algorithm. Reports whether the start symbol derives the sentence and returns a parse tree when it does.",
	}, svc.ParseSentence)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_grammars",
		Description: "List the grammars available from the configured grammar directories and the built-in set.",
	}, svc.ListGrammars)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_grammar",
		Description: "Show a grammar's symbols, its source document and any lint issues such as unreachable or undefined symbols.",
	}, svc.ShowGrammar)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the MCP server over streamable HTTP on addr until ctx is
// cancelled.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

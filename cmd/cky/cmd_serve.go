package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/cky/internal/mcptools"
)

func newServeMCPCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-mcp",
		Short: "Run the grammar tools as an MCP server",
		Long: `Run an MCP server exposing parse_sentence, list_grammars and show_grammar.

The server speaks stdio by default. With --http it serves streamable
HTTP on the given address instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := mcptools.NewGrammarService(a.catalog, mcptools.Config{
				DefaultGrammar: a.grammarName(""),
				StartSymbol:    a.cfg.StartSymbol,
				Workers:        a.cfg.Workers,
			})
			server := mcptools.NewGrammarMCPServer(svc)

			if addr != "" {
				a.log.Infof("serving MCP over HTTP on %s", addr)
				return mcptools.RunHTTP(ctx, server, addr)
			}
			a.log.Info("serving MCP on stdio")
			return mcptools.RunStdio(ctx, server)
		},
	}

	cmd.Flags().StringVar(&addr, "http", "", "serve streamable HTTP on this address (e.g. :8080)")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dusk-indust/cky/internal/catalog"
	"github.com/dusk-indust/cky/internal/config"
)

// version is set by goreleaser at build time.
var version = "dev"

// defaultGrammar is used when neither --grammar nor the project config
// names one.
const defaultGrammar = "jurafsky"

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configDir string
	verbosity int

	cfg     *config.ProjectConfig
	catalog *catalog.Catalog
	log     commonlog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: commonlog.GetLogger("cky")}

	rootCmd := &cobra.Command{
		Use:           "cky",
		Short:         "Parse sentences with grammars in Chomsky normal form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configDir, "config", ".", "directory containing cky.yml")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newGrammarsCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newServeMCPCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if cfg.Verbose && verbosity == 0 {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	a.catalog = catalog.New(cfg.GrammarDirs)
	a.log.Debugf("grammar dirs: %v", cfg.GrammarDirs)
	return nil
}

func (a *app) grammarName(flag string) string {
	return firstNonEmpty(flag, a.cfg.DefaultGrammar, defaultGrammar)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/cky/internal/grammar"
)

func newCheckCmd(a *app) *cobra.Command {
	var start string
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Load a grammar file and report problems",
		Long: `Load a grammar document (.json, .yml or .yaml) and lint it.

Load errors, such as a production that is not in Chomsky normal form,
always fail the command. Lint findings only fail it with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(grammar.File(args[0]))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d productions, %d non-terminals, %d terminals\n",
				args[0], g.Len(), len(g.NonTerminals()), len(g.Terminals()))

			issues := grammar.Lint(g, firstNonEmpty(start, a.cfg.StartSymbol))
			for _, issue := range issues {
				fmt.Fprintf(w, "  %s\n", issue)
			}
			if strict && len(issues) > 0 {
				return fmt.Errorf("%d lint issue(s) in %s", len(issues), args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "start symbol to lint against (default from config, else S)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when lint reports any issue")

	return cmd
}

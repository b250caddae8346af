package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newGrammarsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List the available grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.catalog.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No grammars found.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				where := e.Path
				if e.Embedded {
					where = "(built-in)"
				}
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, where)
			}
			return tw.Flush()
		},
	}
}

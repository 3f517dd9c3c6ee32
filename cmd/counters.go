package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newCountersCmd creates the 'counters' subcommand.
func newCountersCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "counters <champion>",
		Short: "Show the best counter picks against a champion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()

			n := limit
			if n == 0 {
				n = cfg.Defaults.Limit
			}
			entries, err := appInstance.GetClient().Counters(cmd.Context(), n, args[0], rankArg(cfg))
			if err != nil {
				return fmt.Errorf("fetch counters for %s: %w", args[0], err)
			}

			if jsonOut {
				return printJSON(entries)
			}
			t := newTable()
			t.AppendHeader(table.Row{"Champion", "Winrate vs " + args[0]})
			for _, e := range entries {
				t.AppendRow(table.Row{e.Champion, e.Winrate})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of counters to show")
	return cmd
}

// Package cmd defines and implements the CLI commands for the lolscout executable.
package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newTierlistCmd creates the 'tierlist' subcommand.
func newTierlistCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "tierlist",
		Short: "Show the champion tier list",
		Long: `Fetches the ranked tier list for the selected lane and rank
bracket and prints the top entries in site order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()

			n := limit
			if n == 0 {
				n = cfg.Defaults.Limit
			}
			entries, err := appInstance.GetClient().Tierlist(cmd.Context(), n, laneArg(cfg), rankArg(cfg))
			if err != nil {
				return fmt.Errorf("fetch tierlist: %w", err)
			}

			if jsonOut {
				return printJSON(entries)
			}
			t := newTable()
			t.AppendHeader(table.Row{"#", "Champion", "Tier", "Winrate", "PBI"})
			for _, e := range entries {
				t.AppendRow(table.Row{e.Rank, e.Champion, e.Tier, e.Winrate, e.PBI})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of rows to show")
	return cmd
}

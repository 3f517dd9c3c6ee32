package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newMatchupCmd creates the 'matchup' subcommand.
func newMatchupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matchup <champion> <opponent>",
		Short: "Show head-to-head statistics for a matchup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()

			stats, err := appInstance.GetClient().Matchup(cmd.Context(), args[0], args[1], laneArg(cfg), rankArg(cfg))
			if err != nil {
				return fmt.Errorf("fetch matchup %s vs %s: %w", args[0], args[1], err)
			}

			if jsonOut {
				return printJSON(stats)
			}
			t := newTable()
			t.AppendHeader(table.Row{"Matchup", "Winrate", "Games"})
			t.AppendRow(table.Row{fmt.Sprintf("%s vs %s", args[0], args[1]), stats.Winrate, stats.Games})
			t.Render()
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newChampionCmd creates the 'champion' subcommand.
func newChampionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "champion <name>",
		Short: "Show build-page statistics for a champion",
		Long: `Fetches the champion's build page for the selected lane and rank
bracket: winrate and trend, pick/ban rates, tier placement, game count,
and the damage breakdown by type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()

			stats, err := appInstance.GetClient().ChampionData(cmd.Context(), args[0], laneArg(cfg), rankArg(cfg))
			if err != nil {
				return fmt.Errorf("fetch stats for %s: %w", args[0], err)
			}

			if jsonOut {
				return printJSON(stats)
			}
			t := newTable()
			t.AppendHeader(table.Row{"Stat", "Value"})
			t.AppendRows([]table.Row{
				{"Winrate", stats.Winrate},
				{"WR delta", stats.WRDelta},
				{"Game avg WR", stats.GameAvgWR},
				{"Pickrate", stats.Pickrate},
				{"Tier", stats.Tier},
				{"Rank", stats.Rank},
				{"Banrate", stats.Banrate},
				{"Games", stats.Games},
			})
			t.Render()

			d := newTable()
			d.AppendHeader(table.Row{"Damage", "Amount", "Share"})
			d.AppendRows([]table.Row{
				{"Physical", stats.Damage.Physical, stats.Damage.PhysicalPct},
				{"Magic", stats.Damage.Magic, stats.Damage.MagicPct},
				{"True", stats.Damage.True, stats.Damage.TruePct},
				{"Total", stats.Damage.Total, ""},
			})
			d.Render()
			return nil
		},
	}
}

package cmd

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lolscout/internal/lolalytics"
)

// newLanesCmd creates the 'lanes' subcommand listing accepted lane aliases.
func newLanesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lanes",
		Short: "List accepted lane filters and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			aliases := lolalytics.LaneAliases()
			if jsonOut {
				return printJSON(aliases)
			}
			out := make(map[string]string, len(aliases))
			for k, v := range aliases {
				out[k] = string(v)
			}
			renderAliasTable("Alias", "Lane", out)
			return nil
		},
	}
}

// newRanksCmd creates the 'ranks' subcommand listing accepted rank aliases.
func newRanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "List accepted rank filters and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			aliases := lolalytics.RankAliases()
			if jsonOut {
				return printJSON(aliases)
			}
			out := make(map[string]string, len(aliases))
			for k, v := range aliases {
				out[k] = string(v)
			}
			renderAliasTable("Alias", "Rank", out)
			return nil
		},
	}
}

func renderAliasTable(aliasCol, canonCol string, aliases map[string]string) {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable()
	t.AppendHeader(table.Row{aliasCol, canonCol})
	for _, k := range keys {
		canon := aliases[k]
		if canon == "" {
			canon = "(default)"
		}
		t.AppendRow(table.Row{k, canon})
	}
	t.Render()
}

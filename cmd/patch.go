package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lolscout/internal/lolalytics"
)

// newPatchCmd creates the 'patch' subcommand.
func newPatchCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Show current-patch balance changes",
		Long: `Fetches the buffed, nerfed, and adjusted champion lists from the
front page, with winrate, pickrate, and banrate for each entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()

			notes, err := appInstance.GetClient().PatchNotes(cmd.Context(), category, rankArg(cfg))
			if err != nil {
				return fmt.Errorf("fetch patch notes: %w", err)
			}

			if jsonOut {
				return printJSON(notes)
			}
			order := []lolalytics.PatchCategory{
				lolalytics.CategoryBuffed,
				lolalytics.CategoryNerfed,
				lolalytics.CategoryAdjusted,
			}
			t := newTable()
			t.AppendHeader(table.Row{"Change", "Champion", "Winrate", "Pickrate", "Banrate"})
			for _, cat := range order {
				entries, ok := notes[cat]
				if !ok {
					continue
				}
				for _, e := range entries {
					t.AppendRow(table.Row{string(cat), e.Champion, e.Winrate, e.Pickrate, e.Banrate})
				}
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(lolalytics.CategoryAll), "change category (all, buffed, nerfed, adjusted)")
	return cmd
}

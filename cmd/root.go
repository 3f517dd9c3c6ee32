package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lolscout/internal/app"
	"lolscout/internal/config"
	"lolscout/internal/lolalytics"
)

var (
	cfgFile  string
	laneFlag string
	rankFlag string
	jsonOut  bool
)

// appKeyType is the key for storing the App in the context.
type appKeyType string

const appKey appKeyType = "app"

// App defines the application interface that commands use. This allows
// injecting a mock app during tests.
type App interface {
	Close()
	GetConfig() config.Config
	GetLogger() *zap.Logger
	GetClient() *lolalytics.Client
}

// newApp is the application factory. It is a variable so tests can
// replace it with a mock factory.
var newApp = func(_ context.Context) (App, error) {
	return app.New(cfgFile)
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lolscout",
		Short: "Champion statistics scraped from lolalytics.com",
		Long: `lolscout fetches live champion statistics from lolalytics.com:
tier lists, counter picks, per-champion builds, head-to-head matchups,
and current-patch balance changes. Lane and rank filters accept the
same shorthand the site does (jg, adc, dia+, otp, ...).`,

		// Runs after flags are parsed but before the subcommand's RunE;
		// builds the application and injects it into the context.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := newApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialize application services: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if appInstance, ok := cmd.Context().Value(appKey).(App); ok && appInstance != nil {
				appInstance.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is environment only)")
	cmd.PersistentFlags().StringVar(&laneFlag, "lane", "", "lane filter (top, jungle, mid, bottom, support; aliases accepted)")
	cmd.PersistentFlags().StringVar(&rankFlag, "rank", "", "rank filter (iron..challenger, gold_plus, 1trick, ...; aliases accepted)")
	cmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of a table")

	cmd.AddCommand(
		newTierlistCmd(),
		newCountersCmd(),
		newChampionCmd(),
		newMatchupCmd(),
		newPatchCmd(),
		newLanesCmd(),
		newRanksCmd(),
		newServeCmd(),
	)

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveApp(ctx context.Context) (App, error) {
	appInstance, ok := ctx.Value(appKey).(App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application services not initialized")
	}
	return appInstance, nil
}

// laneArg prefers the --lane flag and falls back to the configured default.
func laneArg(cfg config.Config) string {
	if laneFlag != "" {
		return laneFlag
	}
	return cfg.Defaults.Lane
}

func rankArg(cfg config.Config) string {
	if rankFlag != "" {
		return rankFlag
	}
	return cfg.Defaults.Rank
}

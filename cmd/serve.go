package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lolscout/internal/api"
)

// newServeCmd creates the 'serve' subcommand exposing the HTTP API.
func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Starts an HTTP server exposing the scraped statistics as a JSON
API under /v1, plus /healthz, /readyz, and Prometheus /metrics. The
server drains in-flight requests on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			cfg := appInstance.GetConfig()
			logger := appInstance.GetLogger()

			if port != 0 {
				cfg.Server.Port = port
			}

			apiServer := api.NewServer(appInstance.GetClient(), cfg, logger.Named("api"))
			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:           apiServer.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				logger.Info("http server started", zap.Int("port", cfg.Server.Port))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server error", zap.Error(err))
					stop()
				}
			}()

			<-ctx.Done()
			logger.Info("shutdown initiated")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", zap.Error(err))
			}
			logger.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}

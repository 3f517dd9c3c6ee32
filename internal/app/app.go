// Package app initializes and holds long-lived application services, acting as a dependency injection container.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"lolscout/internal/config"
	collyfetcher "lolscout/internal/fetcher/colly"
	"lolscout/internal/logging"
	"lolscout/internal/lolalytics"
)

// App holds the shared, long-lived services for the application: the
// loaded configuration, the zap logger, and the scraping client. It is
// initialized once at startup and handed to the commands that need it.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	client *lolalytics.Client
}

// New creates and initializes an App from the config file at path (or
// defaults and environment when path is empty). It fails fast if any
// service cannot be initialized.
func New(path string) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	fetcher := collyfetcher.New(collyfetcher.Config{
		UserAgent:     cfg.Site.UserAgent,
		Timeout:       cfg.Timeout(),
		Headers:       cfg.SiteHeaders(),
		RespectRobots: cfg.Site.RespectRobots,
	})

	client := lolalytics.NewClient(lolalytics.Config{
		BaseURL: cfg.Site.BaseURL,
		Headers: cfg.SiteHeaders(),
	}, fetcher, logger.Named("lolalytics"))

	return &App{cfg: cfg, logger: logger, client: client}, nil
}

// GetConfig returns the loaded configuration.
func (a *App) GetConfig() config.Config {
	return a.cfg
}

// GetLogger returns the shared zap logger instance.
func (a *App) GetLogger() *zap.Logger {
	return a.logger
}

// GetClient returns the scraping client.
func (a *App) GetClient() *lolalytics.Client {
	return a.client
}

// Close releases held resources. Sync failures on stderr-backed sinks
// are expected and ignored.
func (a *App) Close() {
	_ = a.logger.Sync()
}

// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"lolscout/internal/lolalytics"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Site     SiteConfig     `mapstructure:"site"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// AuthConfig defines API authentication toggles.
type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
}

// SiteConfig points the pipeline at the target site.
type SiteConfig struct {
	BaseURL       string            `mapstructure:"base_url"`
	UserAgent     string            `mapstructure:"user_agent"`
	Headers       map[string]string `mapstructure:"headers"`
	RespectRobots bool              `mapstructure:"respect_robots"`
}

// HTTPConfig configures outbound request behavior.
type HTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// DefaultsConfig supplies query defaults applied by the CLI and API when
// the caller omits a filter.
type DefaultsConfig struct {
	Lane  string `mapstructure:"lane"`
	Rank  string `mapstructure:"rank"`
	Limit int    `mapstructure:"limit"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LOLSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("site.base_url", lolalytics.DefaultBaseURL)
	v.SetDefault("site.respect_robots", false)
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("logging.development", true)
	v.SetDefault("defaults.limit", 10)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.base_url must be an absolute URL")
	}
	if c.Auth.Enabled && c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key must be set when auth is enabled")
	}
	if c.Defaults.Limit <= 0 {
		return fmt.Errorf("defaults.limit must be > 0")
	}
	if _, err := lolalytics.ResolveLane(c.Defaults.Lane); err != nil {
		return fmt.Errorf("defaults.lane: %w", err)
	}
	if _, err := lolalytics.ResolveRank(c.Defaults.Rank); err != nil {
		return fmt.Errorf("defaults.rank: %w", err)
	}
	return nil
}

// Timeout converts the HTTP timeout config into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// SiteHeaders converts the configured header map into an http.Header.
func (c Config) SiteHeaders() http.Header {
	if len(c.Site.Headers) == 0 {
		return nil
	}
	h := http.Header{}
	for k, v := range c.Site.Headers {
		h.Set(k, v)
	}
	return h
}

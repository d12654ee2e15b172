// Package config provides centralized configuration management for the weather MCP server.
package config

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WEATHER"

// Config holds the complete configuration for the application
type Config struct {
	// National Weather Service API configuration
	NWS struct {
		BaseURL   string
		UserAgent string
		Timeout   time.Duration
	}

	Forecast struct {
		// Periods is how many forecast periods get_forecast renders.
		Periods int
	}

	Log struct {
		Level string
	}

	// Schema asks the process to print the tool definitions and exit.
	Schema bool
}

// Flags returns the command line flags understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("weather", pflag.ContinueOnError)
	fs.String("nws.base_url", "https://api.weather.gov", "base URL of the NWS API")
	fs.String("nws.user_agent", "weather-app/1.0", "User-Agent sent to the NWS API")
	fs.Duration("nws.timeout", 30*time.Second, "timeout for a single NWS request")
	fs.Int("forecast.periods", 5, "number of forecast periods to render")
	fs.String("log.level", "info", "log level (debug, info, warn, error)")
	fs.Bool("schema", false, "print the OpenAI tool definitions as JSON and exit")
	return fs
}

// Load builds the configuration from flags, WEATHER_* environment variables
// and defaults, in that order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("nws.base_url", "https://api.weather.gov")
	v.SetDefault("nws.user_agent", "weather-app/1.0")
	v.SetDefault("nws.timeout", 30*time.Second)
	v.SetDefault("forecast.periods", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("schema", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{}
	cfg.NWS.BaseURL = strings.TrimRight(v.GetString("nws.base_url"), "/")
	cfg.NWS.UserAgent = v.GetString("nws.user_agent")
	cfg.NWS.Timeout = v.GetDuration("nws.timeout")
	cfg.Forecast.Periods = v.GetInt("forecast.periods")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Schema = v.GetBool("schema")

	return cfg, nil
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var errors []string

	if c.NWS.BaseURL == "" {
		errors = append(errors, "NWS base URL is empty")
	} else if u, err := url.Parse(c.NWS.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, fmt.Sprintf("NWS base URL %q is not an absolute URL", c.NWS.BaseURL))
	}

	if c.NWS.Timeout <= 0 {
		errors = append(errors, "NWS timeout must be positive")
	}

	if c.Forecast.Periods <= 0 {
		errors = append(errors, "forecast period count must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

// NewLogger creates a logger writing to w at the configured level.
// An unknown level falls back to info.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		level = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "weather",
		ReportTimestamp: true,
	})
}

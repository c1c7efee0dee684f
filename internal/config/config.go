package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Report  ReportConfig
	Logging LoggingConfig
}

// ReportConfig controls how reports are built and rendered.
type ReportConfig struct {
	ReferenceMode string // latest|now
	OutputFormat  string // json|table|xlsx
	DemoLatency   time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultReferenceMode = "latest"
	defaultOutputFormat  = "json"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

var (
	validReferenceModes = []string{"latest", "now"}
	validOutputFormats  = []string{"json", "table", "xlsx"}
	validLoggingLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLoggingFormats = []string{"text", "json"}
)

// Load reads configuration from environment variables, applying defaults.
// A .env file in the working directory is loaded first when present; it
// never overrides variables that are already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Report: ReportConfig{
			ReferenceMode: strings.ToLower(valueOrDefault("REWARDS_REFERENCE_MODE", defaultReferenceMode)),
			OutputFormat:  strings.ToLower(valueOrDefault("REWARDS_OUTPUT_FORMAT", defaultOutputFormat)),
		},
		Logging: LoggingConfig{
			Level:         strings.ToLower(strings.TrimSpace(valueOrDefault("LOG_LEVEL", defaultLoggingLevel))),
			Format:        strings.ToLower(valueOrDefault("LOG_FORMAT", defaultLoggingFormat)),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	if v := os.Getenv("REWARDS_DEMO_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REWARDS_DEMO_LATENCY: %w", err)
		}
		cfg.Report.DemoLatency = d
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing every problem.
func (c Config) Validate() error {
	var errors []string

	if !slices.Contains(validReferenceModes, c.Report.ReferenceMode) {
		errors = append(errors, fmt.Sprintf("invalid reference mode '%s': must be one of %v", c.Report.ReferenceMode, validReferenceModes))
	}
	if !slices.Contains(validOutputFormats, c.Report.OutputFormat) {
		errors = append(errors, fmt.Sprintf("invalid output format '%s': must be one of %v", c.Report.OutputFormat, validOutputFormats))
	}
	if c.Report.DemoLatency < 0 {
		errors = append(errors, fmt.Sprintf("invalid demo latency %v: must not be negative", c.Report.DemoLatency))
	}
	if !slices.Contains(validLoggingLevels, c.Logging.Level) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.Logging.Level, validLoggingLevels))
	}
	if !slices.Contains(validLoggingFormats, c.Logging.Format) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.Logging.Format, validLoggingFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "t", "true", "yes":
			return true
		case "0", "f", "false", "no":
			return false
		}
	}
	return fallback
}

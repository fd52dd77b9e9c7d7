package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the Gini chart tool
type Config struct {
	// World Bank API
	BaseURL       string        `env:"WORLDBANK_BASE_URL,default=https://api.worldbank.org/v2/country"`
	IndicatorCode string        `env:"GINI_INDICATOR_CODE,default=SI.POV.GINI"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT,default=30s"`

	// Chart output
	OutputDir   string `env:"OUTPUT_DIR,default=./charts"`
	StorageMode string `env:"STORAGE_MODE,default=local"`
	GCSBucket   string `env:"GCS_BUCKET"`
	OpenBrowser bool   `env:"OPEN_BROWSER,default=false"`
	ChartTheme  string `env:"CHART_THEME,default=westeros"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that envconfig cannot express with tags
func (c *Config) Validate() error {
	switch c.StorageMode {
	case "local":
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when STORAGE_MODE=gcs")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_MODE %q (want local or gcs)", c.StorageMode)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

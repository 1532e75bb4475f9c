// Package config provides configuration management for the revision exporter and fetcher.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingDataDir           = errors.New("export.data_dir is required")
	ErrMissingOutputDir         = errors.New("export.output_dir is required")
	ErrInvalidBatchSize         = errors.New("export.batch_size must be at least 1")
	ErrInvalidFilePattern       = errors.New("export.file_pattern is not a valid glob")
	ErrMissingEndpoint          = errors.New("fetch.endpoint is required")
	ErrInvalidMaxAttempts       = errors.New("fetch.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("fetch.retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("fetch.retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("fetch.retry.timeout_sec must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete exporter configuration.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExportConfig contains settings for the XML-to-parquet conversion run.
type ExportConfig struct {
	// DataDir is the root containing one subdirectory per article, each laid
	// out as <article>/<year>/<month>/*.xml.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives one parquet file per non-empty article.
	OutputDir string `yaml:"output_dir"`
	// BatchSize is the number of revision files processed per batch.
	BatchSize int `yaml:"batch_size"`
	// IncludeText retains the full revision text in a dedicated column.
	IncludeText bool `yaml:"include_text"`
	// FilePattern selects revision files inside month directories.
	FilePattern string `yaml:"file_pattern"`
}

// FetchConfig contains settings for downloading revision histories.
type FetchConfig struct {
	// Endpoint is the Special:Export base URL, without a trailing slash.
	Endpoint string      `yaml:"endpoint"`
	Articles []string    `yaml:"articles"`
	Retry    RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines retry behavior for export downloads.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
}

// DefaultConfig returns the configuration used when no YAML file is given.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			OutputDir:   "DataFrames",
			BatchSize:   1000,
			FilePattern: "*.xml",
		},
		Fetch: FetchConfig{
			Endpoint: "https://en.wikipedia.org/wiki/Special:Export",
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    500,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        60,
			},
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration. DataDir is checked at the command
// level because only the exporter requires it.
func (c *Config) Validate() error {
	if c.Export.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if c.Export.BatchSize < 1 {
		return ErrInvalidBatchSize
	}

	if _, err := path.Match(c.Export.FilePattern, "x"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFilePattern, c.Export.FilePattern)
	}

	if c.Fetch.Endpoint == "" {
		return ErrMissingEndpoint
	}

	if c.Fetch.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Fetch.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Fetch.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Fetch.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{DataDir: %s, OutputDir: %s, BatchSize: %d, IncludeText: %t}",
		c.Export.DataDir,
		c.Export.OutputDir,
		c.Export.BatchSize,
		c.Export.IncludeText,
	)
}

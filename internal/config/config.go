//-------------------------------------------------------------------------
//
// Siphon Demo Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for siphon-seed.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rafael-alani/siphon-backend/internal/analytics"
	"github.com/rafael-alani/siphon-backend/internal/output"
	"github.com/rafael-alani/siphon-backend/internal/schedule"
)

// Config holds all configuration for siphon-seed.
type Config struct {
	// Connection is the PostgreSQL connection string used by import.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Analyze holds configuration for the analyze and savings subcommands.
	Analyze AnalyzeConfig `mapstructure:"analyze"`

	// Import holds configuration for the import subcommand.
	Import ImportConfig `mapstructure:"import"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Variant is the sampling schedule: uniform or tiered.
	Variant string `mapstructure:"variant"`

	// Seed makes random draws reproducible. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	// Timezone decides calendar months for seasonal pricing.
	Timezone string `mapstructure:"timezone"`

	// OutputDir is the directory both documents are written to.
	OutputDir string `mapstructure:"output_dir"`

	// CompaniesFile is the file name of the company roster.
	CompaniesFile string `mapstructure:"companies_file"`

	// TradesFile is the file name of the trade list.
	TradesFile string `mapstructure:"trades_file"`

	// Format is the output format: json or xlsx.
	Format string `mapstructure:"format"`
}

// AnalyzeConfig holds configuration for analytics over a dataset.
type AnalyzeConfig struct {
	// Timeframe is the look-back window: 24h, 7d, 30d or 1y.
	Timeframe string `mapstructure:"timeframe"`
}

// ImportConfig holds configuration for loading a dataset into PostgreSQL.
type ImportConfig struct {
	// DropExisting drops existing tables before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Variant:       schedule.TieredName,
			Timezone:      "Local",
			OutputDir:     ".",
			CompaniesFile: "demo_companies.json",
			TradesFile:    "demo_trades.json",
			Format:        "json",
		},
		Analyze: AnalyzeConfig{
			Timeframe: string(analytics.Week),
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./siphon-seed.yaml
// 3. ~/.config/siphon-seed/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("siphon-seed")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "siphon-seed"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// validateFileName rejects names that would escape the output directory.
func validateFileName(key, name string) error {
	if name == "" {
		return fmt.Errorf("%s is required", key)
	}
	if filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%s must be a plain file name, got %q", key, name)
	}
	return nil
}

// ValidateGenerate checks configuration required for generate command.
func (c *Config) ValidateGenerate() error {
	if _, err := schedule.Get(c.Generate.Variant, c.Generate.Timezone); err != nil {
		return err
	}
	if _, err := output.Get(c.Generate.Format); err != nil {
		return err
	}
	if c.Generate.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if err := validateFileName("companies_file", c.Generate.CompaniesFile); err != nil {
		return err
	}
	if err := validateFileName("trades_file", c.Generate.TradesFile); err != nil {
		return err
	}
	if strings.TrimSuffix(c.Generate.CompaniesFile, filepath.Ext(c.Generate.CompaniesFile)) ==
		strings.TrimSuffix(c.Generate.TradesFile, filepath.Ext(c.Generate.TradesFile)) {
		return fmt.Errorf("companies_file and trades_file must differ")
	}
	return nil
}

// ValidateRead checks configuration required to read a dataset back.
func (c *Config) ValidateRead() error {
	if c.Generate.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if err := validateFileName("companies_file", c.Generate.CompaniesFile); err != nil {
		return err
	}
	return validateFileName("trades_file", c.Generate.TradesFile)
}

// ValidateAnalyze checks configuration required for analyze and savings.
func (c *Config) ValidateAnalyze() error {
	if err := c.ValidateRead(); err != nil {
		return err
	}
	_, err := analytics.ParseTimeFrame(c.Analyze.Timeframe)
	return err
}

// ValidateImport checks configuration required for import command.
func (c *Config) ValidateImport() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return c.ValidateRead()
}

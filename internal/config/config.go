// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package config holds all application configuration for the dataset
// generator, loaded via Koanf v2 with layered sources:
//
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting (highest priority)
//
// Example - load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	// cfg.Generator.Users, cfg.Database.Path, etc. are now populated
//
// Config is immutable after Load() and safe for concurrent read access.
package config

import (
	"errors"
	"path/filepath"

	"github.com/mverhoeven/streamforge/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Generator GeneratorConfig `koanf:"generator"`
	Database  DatabaseConfig  `koanf:"database"` // Optional: embedded DuckDB materialization
	Logging   LoggingConfig   `koanf:"logging"`
}

// GeneratorConfig holds the dataset generation parameters.
//
// Environment Variables:
//   - OUT_DIR: output directory for data files (default: ./data)
//   - DAYS: number of days to span events over (default: 7)
//   - USERS: number of users to generate (default: 300)
//   - VIDEOS: number of videos to generate (default: 80)
//   - SEED: random seed (default: 42)
//
// All counts must be >= 1. The seed may be any integer; two runs with the
// same configuration and anchor time produce byte-identical output.
type GeneratorConfig struct {
	OutDir string `koanf:"out_dir" validate:"required"`
	Days   int    `koanf:"days" validate:"gte=1"`
	Users  int    `koanf:"users" validate:"gte=1"`
	Videos int    `koanf:"videos" validate:"gte=1"`
	Seed   int64  `koanf:"seed"`
}

// DatabaseConfig holds the optional embedded DuckDB sink settings.
// When enabled, the generated dataset is also materialized into a DuckDB
// file so analytics SQL can be developed directly against the fixtures.
//
// Environment Variables:
//   - DUCKDB_ENABLED: enable the DuckDB sink (default: false)
//   - DUCKDB_PATH: database file path (default: <out_dir>/streamforge.duckdb)
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 2GB)
//   - DUCKDB_THREADS: DuckDB thread count, 0 = runtime.NumCPU() (default: 0)
type DatabaseConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller info (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks that the configuration is usable. All violations surface
// as *ConfigError before any generation or file output starts.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Generator); err != nil {
		return translateValidation(err)
	}
	if err := validation.ValidateStruct(&c.Logging); err != nil {
		return translateValidation(err)
	}
	if c.Database.Enabled && c.Database.Path == "" {
		return NewConfigError("database.path", "must not be empty when the DuckDB sink is enabled")
	}
	return nil
}

// translateValidation maps a struct validation failure onto the ConfigError
// taxonomy, keeping the first failing field as the reported one.
func translateValidation(err error) error {
	var verr *validation.StructValidationError
	if errors.As(err, &verr) && len(verr.Errors()) > 0 {
		first := verr.Errors()[0]
		return NewConfigError(first.Field(), first.Error())
	}
	return NewConfigError("config", err.Error())
}

// applyDerivedDefaults fills settings whose defaults depend on other settings.
func (c *Config) applyDerivedDefaults() {
	if c.Database.Enabled && c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.Generator.OutDir, "streamforge.duckdb")
	}
}

// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/streamforge/config.yaml",
	"/etc/streamforge/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config
// file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values. These defaults are
// applied first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			OutDir: "data",
			Days:   7,
			Users:  300,
			Videos: 80,
			Seed:   42,
		},
		Database: DatabaseConfig{
			Enabled:   false, // Sink is opt-in; plain file output by default
			Path:      "",    // Derived from out_dir when enabled and unset
			MaxMemory: "2GB",
			Threads:   0, // 0 = use runtime.NumCPU()
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//
//  1. Defaults: built-in defaults from defaultConfig()
//  2. Config File: optional YAML file (if one exists)
//  3. Environment Variables: override any setting
//
// The returned Config has passed Validate(); callers can rely on every
// generation parameter being usable.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	// Names are mapped to koanf paths: USERS -> generator.users,
	// DUCKDB_PATH -> database.path, LOG_LEVEL -> logging.level.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.applyDerivedDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path of the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables return empty string and are skipped, so unrelated
// environment variables never pollute the configuration.
func envTransformFunc(key string) string {
	envMappings := map[string]string{
		// Generator mappings
		"OUT_DIR": "generator.out_dir",
		"DAYS":    "generator.days",
		"USERS":   "generator.users",
		"VIDEOS":  "generator.videos",
		"SEED":    "generator.seed",

		// Database mappings
		"DUCKDB_ENABLED":    "database.enabled",
		"DUCKDB_PATH":       "database.path",
		"DUCKDB_MAX_MEMORY": "database.max_memory",
		"DUCKDB_THREADS":    "database.threads",

		// Logging mappings
		"LOG_LEVEL":  "logging.level",
		"LOG_FORMAT": "logging.format",
		"LOG_CALLER": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}

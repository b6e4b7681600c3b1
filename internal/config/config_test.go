// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package config

import (
	"errors"
	"testing"
)

// TestDefaultConfig verifies defaultConfig() returns the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Generator.OutDir != "data" {
		t.Errorf("Generator.OutDir = %q, want data", cfg.Generator.OutDir)
	}
	if cfg.Generator.Days != 7 {
		t.Errorf("Generator.Days = %d, want 7", cfg.Generator.Days)
	}
	if cfg.Generator.Users != 300 {
		t.Errorf("Generator.Users = %d, want 300", cfg.Generator.Users)
	}
	if cfg.Generator.Videos != 80 {
		t.Errorf("Generator.Videos = %d, want 80", cfg.Generator.Videos)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("Generator.Seed = %d, want 42", cfg.Generator.Seed)
	}

	if cfg.Database.Enabled {
		t.Error("Database.Enabled should be false by default")
	}
	if cfg.Database.MaxMemory != "2GB" {
		t.Errorf("Database.MaxMemory = %q, want 2GB", cfg.Database.MaxMemory)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

// TestValidateRejectsBadValues verifies every invalid configuration fails
// with a *ConfigError naming the offending field.
func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero days", mutate: func(c *Config) { c.Generator.Days = 0 }},
		{name: "negative days", mutate: func(c *Config) { c.Generator.Days = -1 }},
		{name: "zero users", mutate: func(c *Config) { c.Generator.Users = 0 }},
		{name: "negative users", mutate: func(c *Config) { c.Generator.Users = -10 }},
		{name: "zero videos", mutate: func(c *Config) { c.Generator.Videos = 0 }},
		{name: "empty out dir", mutate: func(c *Config) { c.Generator.OutDir = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "sink without path", mutate: func(c *Config) { c.Database.Enabled = true; c.Database.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
			if cerr.Field == "" {
				t.Error("ConfigError.Field is empty")
			}
		})
	}
}

// TestValidateAcceptsDefaults verifies the defaults pass validation as is.
func TestValidateAcceptsDefaults(t *testing.T) {
	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("default configuration failed validation: %v", err)
	}
}

// TestApplyDerivedDefaults verifies the sink path derives from the output
// directory when enabled but unset.
func TestApplyDerivedDefaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Enabled = true
	cfg.applyDerivedDefaults()

	if cfg.Database.Path != "data/streamforge.duckdb" {
		t.Errorf("derived Database.Path = %q, want data/streamforge.duckdb", cfg.Database.Path)
	}

	// Explicit path is preserved
	cfg.Database.Path = "/tmp/custom.duckdb"
	cfg.applyDerivedDefaults()
	if cfg.Database.Path != "/tmp/custom.duckdb" {
		t.Errorf("explicit Database.Path overwritten: %q", cfg.Database.Path)
	}
}

// TestConfigErrorMessage verifies the error string carries field and reason.
func TestConfigErrorMessage(t *testing.T) {
	err := NewConfigError("users", "must be >= 1")
	want := "invalid configuration: users: must be >= 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

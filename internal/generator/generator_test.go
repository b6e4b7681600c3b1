// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package generator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mverhoeven/streamforge/internal/config"
)

func testGeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		OutDir: "data",
		Days:   7,
		Users:  20,
		Videos: 10,
		Seed:   42,
	}
}

// TestGenerateDeterminism verifies two runs with identical configuration and
// anchor produce identical datasets.
func TestGenerateDeterminism(t *testing.T) {
	cfg := testGeneratorConfig()

	a, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if !reflect.DeepEqual(a.Users, b.Users) {
		t.Error("user tables differ across identical runs")
	}
	if !reflect.DeepEqual(a.Videos, b.Videos) {
		t.Error("video tables differ across identical runs")
	}
	if !reflect.DeepEqual(a.Devices, b.Devices) {
		t.Error("device tables differ across identical runs")
	}
	if !reflect.DeepEqual(a.Events, b.Events) {
		t.Error("event streams differ across identical runs")
	}
}

// TestGenerateSeedChangesOutput verifies a different seed changes the event
// stream.
func TestGenerateSeedChangesOutput(t *testing.T) {
	cfg := testGeneratorConfig()
	a, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cfg.Seed = 43
	b, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if reflect.DeepEqual(a.Events, b.Events) {
		t.Error("different seeds produced identical event streams")
	}
}

// TestGenerateCardinality verifies configured and fixed table sizes.
func TestGenerateCardinality(t *testing.T) {
	cfg := testGeneratorConfig()
	cfg.Users = 33
	cfg.Videos = 11

	ds, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(ds.Users) != 33 {
		t.Errorf("users = %d, want 33", len(ds.Users))
	}
	if len(ds.Videos) != 11 {
		t.Errorf("videos = %d, want 11", len(ds.Videos))
	}
	if len(ds.Devices) != 60 {
		t.Errorf("devices = %d, want 60 regardless of configuration", len(ds.Devices))
	}
	if len(ds.Events) == 0 {
		t.Error("no events generated")
	}
}

// TestGenerateRejectsInvalidConfig verifies non-positive counts fail with a
// ConfigError before any generation.
func TestGenerateRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.GeneratorConfig)
	}{
		{name: "zero users", mutate: func(c *config.GeneratorConfig) { c.Users = 0 }},
		{name: "negative users", mutate: func(c *config.GeneratorConfig) { c.Users = -1 }},
		{name: "zero videos", mutate: func(c *config.GeneratorConfig) { c.Videos = 0 }},
		{name: "negative videos", mutate: func(c *config.GeneratorConfig) { c.Videos = -3 }},
		{name: "zero days", mutate: func(c *config.GeneratorConfig) { c.Days = 0 }},
		{name: "negative days", mutate: func(c *config.GeneratorConfig) { c.Days = -7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testGeneratorConfig()
			tt.mutate(&cfg)

			_, err := Generate(cfg, testAnchor)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cerr *config.ConfigError
			if !errors.As(err, &cerr) {
				t.Errorf("error type = %T, want *config.ConfigError", err)
			}
		})
	}
}

// TestGenerateAnchorTruncation verifies sub-second anchor precision is
// dropped so timestamps never carry fractional seconds.
func TestGenerateAnchorTruncation(t *testing.T) {
	cfg := testGeneratorConfig()
	cfg.Users = 1

	noisy := testAnchor.Add(123456789) // +123.456789ms
	a, err := Generate(cfg, noisy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(cfg, testAnchor)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(a.Events, b.Events) {
		t.Error("sub-second anchor noise changed the output")
	}
}

// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package main is the entry point for the streamforge dataset generator.
//
// Streamforge synthesizes a fake analytics dataset for a video-streaming
// product: user records, a video catalog, device configurations and a
// chronological event log (logins, sessions, watch-time segments, likes and
// hearts). The output is deterministic for a fixed configuration and seed,
// making it suitable as reproducible fixture data for analytics development
// and testing, with no external service dependency.
//
// The run is a single pass:
//
//  1. Configuration: load settings from environment variables and an
//     optional config file (Koanf v2), validate before doing anything else
//  2. Generation: users, videos, devices, then the simulated event stream,
//     all drawing from one seeded random source
//  3. Output: users.csv, videos.csv, devices.csv and events.jsonl in the
//     output directory
//  4. Optional: materialize the dataset into an embedded DuckDB file
//
// # Configuration
//
// All settings have defaults; common overrides:
//
//	export OUT_DIR=./data    # output directory
//	export DAYS=7            # time span of the event window
//	export USERS=300         # users to generate
//	export VIDEOS=80         # catalog size
//	export SEED=42           # random seed
//	./streamforge
//
// Enable the DuckDB sink:
//
//	export DUCKDB_ENABLED=true
//	export DUCKDB_PATH=./data/streamforge.duckdb
//	./streamforge
//
// Any configuration validation failure terminates the run with a non-zero
// exit status before any output file is written. There are no retries:
// either all four outputs exist and are internally consistent, or the run
// failed and none should be trusted.
package main

import (
	"context"
	"time"

	"github.com/mverhoeven/streamforge/internal/config"
	"github.com/mverhoeven/streamforge/internal/database"
	"github.com/mverhoeven/streamforge/internal/generator"
	"github.com/mverhoeven/streamforge/internal/logging"
	"github.com/mverhoeven/streamforge/internal/output"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	started := time.Now()
	anchor := time.Now().UTC().Truncate(time.Second)

	ds, err := generator.Generate(cfg.Generator, anchor)
	if err != nil {
		logging.Fatal().Err(err).Msg("Dataset generation failed")
	}

	writer := output.NewWriter(cfg.Generator.OutDir)
	paths, err := writer.WriteAll(ds)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to write output files")
	}

	if cfg.Database.Enabled {
		if err := materialize(cfg, ds); err != nil {
			logging.Fatal().Err(err).Msg("Failed to materialize dataset to DuckDB")
		}
	}

	logging.Info().
		Int("files", len(paths)).
		Int("events", len(ds.Events)).
		Dur("elapsed", time.Since(started)).
		Msg("Dataset generation complete")
}

// materialize loads the dataset into the embedded DuckDB sink.
func materialize(cfg *config.Config, ds *generator.Dataset) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close DuckDB sink")
		}
	}()

	return db.LoadDataset(context.Background(), ds)
}

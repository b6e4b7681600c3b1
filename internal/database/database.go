// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package database provides the optional embedded DuckDB sink. When enabled,
// the generated dataset is materialized into a DuckDB file alongside the
// CSV/NDJSON output, so downstream analytics SQL can run directly against
// the fixtures without an ingestion step.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/mverhoeven/streamforge/internal/config"
	"github.com/mverhoeven/streamforge/internal/generator"
	"github.com/mverhoeven/streamforge/internal/logging"
)

// DB wraps the DuckDB connection for fixture materialization.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens (or creates) the DuckDB file and initializes the schema.
// Each run replaces the fixture tables wholesale; the sink always reflects
// exactly one generation run.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure the parent directory exists for the database file.
	// Use 0750 permissions per gosec G301.
	dbDir := filepath.Dir(cfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}

	// Disable auto-install/auto-load of extensions to prevent hangs in
	// restricted network environments; the fixture schema needs none.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}
	if err := db.initialize(context.Background()); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// fixture table definitions, replaced on every run
var schema = []string{
	`CREATE OR REPLACE TABLE users (
		user_id VARCHAR NOT NULL,
		signup_date DATE NOT NULL,
		subscription_tier VARCHAR NOT NULL,
		age_group VARCHAR NOT NULL,
		gender VARCHAR NOT NULL
	)`,
	`CREATE OR REPLACE TABLE videos (
		video_id VARCHAR NOT NULL,
		title VARCHAR NOT NULL,
		genre VARCHAR NOT NULL,
		duration_seconds INTEGER NOT NULL,
		patent_id VARCHAR NOT NULL
	)`,
	`CREATE OR REPLACE TABLE devices (
		device VARCHAR NOT NULL,
		device_model VARCHAR NOT NULL,
		os_version VARCHAR NOT NULL
	)`,
	`CREATE OR REPLACE TABLE events (
		timestamp TIMESTAMP NOT NULL,
		account_id VARCHAR NOT NULL,
		user_id VARCHAR NOT NULL,
		video_id VARCHAR,
		session_id VARCHAR NOT NULL,
		event_name VARCHAR NOT NULL,
		value INTEGER,
		device VARCHAR NOT NULL,
		device_os VARCHAR NOT NULL,
		app_version VARCHAR NOT NULL,
		network_type VARCHAR NOT NULL,
		ip VARCHAR NOT NULL,
		country VARCHAR NOT NULL
	)`,
}

// initialize creates the fixture tables.
func (db *DB) initialize(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// LoadDataset inserts the whole dataset in one transaction. Either every
// table is loaded or the transaction rolls back; a partially loaded sink is
// never left behind.
func (db *DB) LoadDataset(ctx context.Context, ds *generator.Dataset) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	if err := db.loadUsers(ctx, tx, ds); err != nil {
		return err
	}
	if err := db.loadVideos(ctx, tx, ds); err != nil {
		return err
	}
	if err := db.loadDevices(ctx, tx, ds); err != nil {
		return err
	}
	if err := db.loadEvents(ctx, tx, ds); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset load: %w", err)
	}

	logging.Info().
		Str("path", db.cfg.Path).
		Int("users", len(ds.Users)).
		Int("videos", len(ds.Videos)).
		Int("devices", len(ds.Devices)).
		Int("events", len(ds.Events)).
		Msg("Dataset materialized to DuckDB")

	return nil
}

func (db *DB) loadUsers(ctx context.Context, tx *sql.Tx, ds *generator.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO users (user_id, signup_date, subscription_tier, age_group, gender) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare users insert: %w", err)
	}
	defer closeStmtQuietly(stmt)

	for i := range ds.Users {
		u := &ds.Users[i]
		if _, err := stmt.ExecContext(ctx, u.UserID, u.SignupDate, u.SubscriptionTier, u.AgeGroup, u.Gender); err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.UserID, err)
		}
	}
	return nil
}

func (db *DB) loadVideos(ctx context.Context, tx *sql.Tx, ds *generator.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO videos (video_id, title, genre, duration_seconds, patent_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare videos insert: %w", err)
	}
	defer closeStmtQuietly(stmt)

	for i := range ds.Videos {
		v := &ds.Videos[i]
		if _, err := stmt.ExecContext(ctx, v.VideoID, v.Title, v.Genre, v.DurationSeconds, v.PatentID); err != nil {
			return fmt.Errorf("failed to insert video %s: %w", v.VideoID, err)
		}
	}
	return nil
}

func (db *DB) loadDevices(ctx context.Context, tx *sql.Tx, ds *generator.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO devices (device, device_model, os_version) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare devices insert: %w", err)
	}
	defer closeStmtQuietly(stmt)

	for i := range ds.Devices {
		d := &ds.Devices[i]
		if _, err := stmt.ExecContext(ctx, d.Device, d.DeviceModel, d.OSVersion); err != nil {
			return fmt.Errorf("failed to insert device row %d: %w", i, err)
		}
	}
	return nil
}

func (db *DB) loadEvents(ctx context.Context, tx *sql.Tx, ds *generator.Dataset) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO events (timestamp, account_id, user_id, video_id, session_id, event_name, value,
			device, device_os, app_version, network_type, ip, country)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare events insert: %w", err)
	}
	defer closeStmtQuietly(stmt)

	for i := range ds.Events {
		e := &ds.Events[i]
		if _, err := stmt.ExecContext(ctx,
			e.Timestamp, e.AccountID, e.UserID, e.VideoID, e.SessionID, e.EventName, e.Value,
			e.Device, e.DeviceOS, e.AppVersion, e.NetworkType, e.IP, e.Country); err != nil {
			return fmt.Errorf("failed to insert event %d: %w", i, err)
		}
	}
	return nil
}

// TableCount returns the row count of one fixture table. Intended for
// post-load verification and tests; table must be one of the fixture table
// names, not user input.
func (db *DB) TableCount(ctx context.Context, table string) (int, error) {
	var count int
	//nolint:gosec // table names come from the fixed fixture schema
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := db.conn.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database connection")
	}
}

func closeStmtQuietly(stmt *sql.Stmt) {
	if err := stmt.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close prepared statement")
	}
}

// rollbackQuietly rolls the transaction back; ErrTxDone after a successful
// commit is expected and ignored.
func rollbackQuietly(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		logging.Warn().Err(err).Msg("Failed to roll back dataset load")
	}
}

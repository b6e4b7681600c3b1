// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package generator produces the synthetic dataset: three reference tables
// (users, videos, devices) and a simulated event stream.
//
// All randomness flows through a single Source seeded once per run. Table
// generation fully precedes event generation, and within event generation
// the per-user, per-session and per-chunk draws happen in a fixed order, so
// a given configuration and anchor time always yields an identical dataset.
package generator

import (
	"time"

	"github.com/mverhoeven/streamforge/internal/config"
	"github.com/mverhoeven/streamforge/internal/logging"
	"github.com/mverhoeven/streamforge/internal/models"
)

// Dataset is the complete in-memory result of one generation run.
type Dataset struct {
	Users   []models.User
	Videos  []models.Video
	Devices []models.Device
	Events  []models.Event
}

// Generate runs the full pipeline for the given parameters. anchor is the
// generation instant the time window hangs off; callers that need
// byte-identical reruns pass a fixed anchor. It is truncated to whole
// seconds so timestamps never carry a sub-second part.
//
// Invalid parameters (non-positive counts) fail with *config.ConfigError
// before any generation starts.
func Generate(cfg config.GeneratorConfig, anchor time.Time) (*Dataset, error) {
	if cfg.Users < 1 {
		return nil, config.NewConfigError("users", "must be >= 1")
	}
	if cfg.Videos < 1 {
		return nil, config.NewConfigError("videos", "must be >= 1")
	}
	if cfg.Days < 1 {
		return nil, config.NewConfigError("days", "must be >= 1")
	}

	anchor = anchor.Truncate(time.Second)
	src := NewSource(cfg.Seed)

	logging.Debug().
		Int("users", cfg.Users).
		Int("videos", cfg.Videos).
		Int("days", cfg.Days).
		Int64("seed", cfg.Seed).
		Time("anchor", anchor).
		Msg("Generating dataset")

	users := GenerateUsers(src, cfg.Users, cfg.Days, anchor)
	videos := GenerateVideos(src, cfg.Videos)
	devices := GenerateDevices()

	userIDs := make([]string, len(users))
	for i := range users {
		userIDs[i] = users[i].UserID
	}
	videoIDs := make([]string, len(videos))
	for i := range videos {
		videoIDs[i] = videos[i].VideoID
	}

	events, err := GenerateEvents(src, userIDs, videoIDs, cfg.Days, anchor)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("users", len(users)).
		Int("videos", len(videos)).
		Int("devices", len(devices)).
		Int("events", len(events)).
		Msg("Dataset generated")

	return &Dataset{
		Users:   users,
		Videos:  videos,
		Devices: devices,
		Events:  events,
	}, nil
}

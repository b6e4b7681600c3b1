// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package config

import "fmt"

// ConfigError reports invalid generator configuration. It covers both
// directly configured values (non-positive counts) and derived preconditions
// discovered before generation starts (empty id sets). Configuration errors
// are fatal and never retried: the run aborts before any output file exists.
type ConfigError struct {
	// Field is the configuration field or derived input at fault.
	Field string

	// Reason describes why the value is unacceptable.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// NewConfigError constructs a ConfigError for the given field.
func NewConfigError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}

// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package output serializes a generated dataset to its on-disk formats:
// the reference tables as CSV with a header row, the event stream as NDJSON
// (one JSON object per line, inapplicable fields as explicit null).
//
// Each file is produced in a single pass. There is no transactional
// guarantee across files; a failed run leaves whatever was written so far
// and the whole output set should be regenerated.
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/mverhoeven/streamforge/internal/generator"
	"github.com/mverhoeven/streamforge/internal/logging"
	"github.com/mverhoeven/streamforge/internal/models"
)

// Output file names within the target directory.
const (
	UsersFile   = "users.csv"
	VideosFile  = "videos.csv"
	DevicesFile = "devices.csv"
	EventsFile  = "events.jsonl"
)

// Writer serializes datasets into a target directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer for the given output directory. The directory
// is created on first write if it does not exist.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteAll writes the four output files in a fixed order and returns the
// paths written. On error the returned slice holds the paths completed
// before the failure.
func (w *Writer) WriteAll(ds *generator.Dataset) ([]string, error) {
	// 0750 per gosec G301
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}

	var written []string

	usersPath, err := w.writeCSV(UsersFile, models.UserCSVHeader, len(ds.Users), func(i int) []string {
		return ds.Users[i].Row()
	})
	if err != nil {
		return written, err
	}
	written = append(written, usersPath)

	videosPath, err := w.writeCSV(VideosFile, models.VideoCSVHeader, len(ds.Videos), func(i int) []string {
		return ds.Videos[i].Row()
	})
	if err != nil {
		return written, err
	}
	written = append(written, videosPath)

	devicesPath, err := w.writeCSV(DevicesFile, models.DeviceCSVHeader, len(ds.Devices), func(i int) []string {
		return ds.Devices[i].Row()
	})
	if err != nil {
		return written, err
	}
	written = append(written, devicesPath)

	eventsPath, err := w.writeEvents(ds.Events)
	if err != nil {
		return written, err
	}
	written = append(written, eventsPath)

	for _, p := range written {
		logging.Info().Str("path", p).Msg("Wrote output file")
	}

	return written, nil
}

// writeCSV writes one reference table with its header row.
func (w *Writer) writeCSV(name string, header []string, rows int, row func(int) []string) (string, error) {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer closeQuietly(f, path)

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for i := 0; i < rows; i++ {
		if err := cw.Write(row(i)); err != nil {
			return "", fmt.Errorf("failed to write row %d to %s: %w", i, path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}

// writeEvents writes the event stream as newline-delimited JSON. Key order
// follows the Event struct declaration; nulls are explicit.
func (w *Writer) writeEvents(events []models.Event) (string, error) {
	path := filepath.Join(w.dir, EventsFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer closeQuietly(f, path)

	bw := bufio.NewWriter(f)
	for i := range events {
		line, err := json.Marshal(&events[i])
		if err != nil {
			return "", fmt.Errorf("failed to marshal event %d: %w", i, err)
		}
		if _, err := bw.Write(line); err != nil {
			return "", fmt.Errorf("failed to write event %d to %s: %w", i, path, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return "", fmt.Errorf("failed to write event %d to %s: %w", i, path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return path, nil
}

// closeQuietly closes f, logging instead of failing on error. Write errors
// are already surfaced through the flush paths.
func closeQuietly(f *os.File, path string) {
	if err := f.Close(); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Failed to close output file")
	}
}

// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package models

// Event names emitted by the simulator.
const (
	EventFirstLogin   = "first_login"
	EventSessionStart = "session_start"
	EventWatchTime    = "watch_time"
	EventLike         = "like"
	EventHeart        = "heart"
	EventSessionEnd   = "session_end"
)

// Event is one row of the generated event stream, serialized to events.jsonl
// as one JSON object per line.
//
// Null discipline:
//   - VideoID is non-nil only for watch_time, like and heart events.
//   - Value is non-nil only for watch_time events (watched seconds, >= 1).
//
// Both fields deliberately omit the omitempty tag: inapplicable fields are
// serialized as explicit JSON null, never dropped.
//
// Timestamp is a local-naive ISO-8601 string with whole-second precision.
// Device through Country are session-scoped attributes: constant across all
// events that share a SessionID.
type Event struct {
	Timestamp   string  `json:"timestamp"`
	AccountID   string  `json:"account_id"`
	UserID      string  `json:"user_id"`
	VideoID     *string `json:"video_id"`
	SessionID   string  `json:"session_id"`
	EventName   string  `json:"event_name"`
	Value       *int    `json:"value"`
	Device      string  `json:"device"`
	DeviceOS    string  `json:"device_os"`
	AppVersion  string  `json:"app_version"`
	NetworkType string  `json:"network_type"`
	IP          string  `json:"ip"`
	Country     string  `json:"country"`
}

// IsEngagement reports whether the event is a like or heart companion event.
func (e Event) IsEngagement() bool {
	return e.EventName == EventLike || e.EventName == EventHeart
}

// ReferencesVideo reports whether this event kind carries a video reference.
func (e Event) ReferencesVideo() bool {
	switch e.EventName {
	case EventWatchTime, EventLike, EventHeart:
		return true
	default:
		return false
	}
}

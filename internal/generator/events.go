// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package generator

import (
	"fmt"
	"time"

	"github.com/mverhoeven/streamforge/internal/config"
	"github.com/mverhoeven/streamforge/internal/models"
)

// TimestampLayout is the local-naive ISO-8601 format used for event
// timestamps. All simulated offsets are whole seconds and the anchor is
// truncated to the second, so no sub-second part ever appears.
const TimestampLayout = "2006-01-02T15:04:05"

// Session-scoped categorical attribute pools.
var (
	accounts        = []string{"acct_1", "acct_2", "acct_3"}
	deviceOSOptions = []string{"iOS", "Android", "Windows", "macOS"}
	appVersions     = []string{"1.0.0", "1.1.0", "1.2.0", "2.0.0", "2.1.0"}
	networkTypes    = []string{"wifi", "4G", "5G"}
	countries       = []string{"US", "CA", "GB", "DE", "FR", "BR", "IN", "AU", "JP"}

	engagementKinds = []string{models.EventLike, models.EventHeart}
)

// Simulation parameters. These shape the event stream; they are fixed
// constants of the dataset, not configuration.
const (
	sessionLambda     = 1.8  // mean extra sessions per user (always >= 1 total)
	watchScaleSeconds = 12.0 // exponential scale of one watch chunk
	engagementProb    = 0.12 // chance a chunk gets a like/heart companion
	maxSessionVideos  = 4
	maxChunks         = 10
	maxChunkGapSecs   = 50
	maxEndSlackSecs   = 60
	minSessionGapMins = 10
	maxSessionGapMins = 600
	firstLoginLead    = 5 * time.Minute
)

// sessionScope holds the categorical attributes drawn once per session and
// repeated on every event of that session.
type sessionScope struct {
	accountID   string
	sessionID   string
	userID      string
	device      string
	deviceOS    string
	appVersion  string
	networkType string
	ip          string
	country     string
}

// drawSessionScope draws the per-session attributes in their fixed order.
// Draw order is part of the reproducibility contract; do not reorder.
func drawSessionScope(src *Source, userID string, sessionIndex int) sessionScope {
	return sessionScope{
		accountID:   src.Choice(accounts),
		sessionID:   fmt.Sprintf("s_%s_%04d", userID, sessionIndex),
		userID:      userID,
		device:      src.Choice(deviceTypes),
		deviceOS:    src.Choice(deviceOSOptions),
		appVersion:  src.Choice(appVersions),
		networkType: src.Choice(networkTypes),
		ip: fmt.Sprintf("10.%d.%d.%d",
			src.IntBetween(0, 255), src.IntBetween(0, 255), src.IntBetween(1, 254)),
		country: src.Choice(countries),
	}
}

// event builds one event record carrying the session's scoped attributes.
// videoID and value stay nil for non-watch events so they serialize as
// explicit JSON null.
func (sc sessionScope) event(ts time.Time, name string, videoID *string, value *int) models.Event {
	return models.Event{
		Timestamp:   ts.Format(TimestampLayout),
		AccountID:   sc.accountID,
		UserID:      sc.userID,
		VideoID:     videoID,
		SessionID:   sc.sessionID,
		EventName:   name,
		Value:       value,
		Device:      sc.device,
		DeviceOS:    sc.deviceOS,
		AppVersion:  sc.appVersion,
		NetworkType: sc.networkType,
		IP:          sc.ip,
		Country:     sc.country,
	}
}

// GenerateEvents simulates the full event log for the given users against
// the given video catalog. Events are grouped by user in input order, and
// per user chronologically: one first_login five minutes before the first
// session, then for each session a session_start, 1-10 watch chunks with
// optional like/heart companions, and a session_end at the start plus
// accumulated watch seconds plus random slack, never earlier than the last
// in-session event. Sessions never overlap; each starts 10-600 minutes
// after the previous one ended.
//
// Both id sets must be non-empty; an empty set fails fast with a
// *config.ConfigError before any sampling happens. days may be zero, in
// which case every user's first session starts exactly at the window start.
func GenerateEvents(src *Source, userIDs, videoIDs []string, days int, anchor time.Time) ([]models.Event, error) {
	if len(userIDs) == 0 {
		return nil, config.NewConfigError("users", "derived user id set is empty")
	}
	if len(videoIDs) == 0 {
		return nil, config.NewConfigError("videos", "derived video id set is empty")
	}

	base := anchor.Add(-time.Duration(days) * 24 * time.Hour)
	events := make([]models.Event, 0, len(userIDs)*16)

	for _, userID := range userIDs {
		numSessions := 1 + src.Poisson(sessionLambda)
		cursor := base.Add(time.Duration(src.Intn(days*24)) * time.Hour)

		for s := 0; s < numSessions; s++ {
			scope := drawSessionScope(src, userID, s)

			// Exactly one first_login per user, ahead of the first session.
			if s == 0 {
				events = append(events, scope.event(cursor.Add(-firstLoginLead), models.EventFirstLogin, nil, nil))
			}

			events = append(events, scope.event(cursor, models.EventSessionStart, nil, nil))

			watched := src.Sample(videoIDs, src.IntBetween(1, maxSessionVideos))

			watchSeconds := 0
			numChunks := src.IntBetween(1, maxChunks)
			t := cursor
			lastActivity := cursor
			for c := 0; c < numChunks; c++ {
				t = t.Add(time.Duration(src.IntBetween(1, maxChunkGapSecs)) * time.Second)
				value := int(src.Exponential(watchScaleSeconds)) + 1
				watchSeconds += value

				videoID := src.Choice(watched)
				events = append(events, scope.event(t, models.EventWatchTime, &videoID, &value))
				lastActivity = t

				if src.Float64() < engagementProb {
					engagedVideo := src.Choice(watched)
					name := src.Choice(engagementKinds)
					lastActivity = t.Add(time.Second)
					events = append(events, scope.event(lastActivity, name, &engagedVideo, nil))
				}
			}

			// End derives from accumulated watch seconds plus slack, but a
			// session never ends before its last activity: chunk gaps can
			// outrun watch seconds, and every in-session event must fall
			// inside the start/end bracket.
			end := cursor.Add(time.Duration(watchSeconds+src.IntBetween(0, maxEndSlackSecs)) * time.Second)
			if end.Before(lastActivity) {
				end = lastActivity
			}
			events = append(events, scope.event(end, models.EventSessionEnd, nil, nil))

			cursor = end.Add(time.Duration(src.IntBetween(minSessionGapMins, maxSessionGapMins)) * time.Minute)
		}
	}

	return events, nil
}

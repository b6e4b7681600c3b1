// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

package generator

import (
	"fmt"
	"time"

	"github.com/mverhoeven/streamforge/internal/models"
)

// Categorical attribute pools for the reference tables.
var (
	subscriptionTiers = []string{"free", "basic", "premium"}
	ageGroups         = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	genders           = []string{"female", "male", "other", "prefer_not_to_say"}

	genres = []string{
		"drama",
		"comedy",
		"documentary",
		"action",
		"horror",
		"sci-fi",
		"fantasy",
		"romance",
	}

	deviceTypes  = []string{"mobile", "tablet", "desktop"}
	deviceModels = []string{"A1", "A2", "B1", "B2", "C1"}
	osVersions   = []string{"iOS 16", "Android 13", "Windows 11", "macOS 14"}
)

// GenerateUsers builds the users reference table: count rows with ids
// u_00000..u_<count-1>, signup dates drawn uniformly between 1 and days+7
// days before the anchor date, and uniformly drawn categorical attributes.
func GenerateUsers(src *Source, count, days int, anchor time.Time) []models.User {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		signup := anchor.AddDate(0, 0, -src.IntBetween(1, days+7))
		users = append(users, models.User{
			UserID:           fmt.Sprintf("u_%05d", i),
			SignupDate:       signup.Format("2006-01-02"),
			SubscriptionTier: src.Choice(subscriptionTiers),
			AgeGroup:         src.Choice(ageGroups),
			Gender:           src.Choice(genders),
		})
	}
	return users
}

// GenerateVideos builds the videos reference table: count rows with ids
// v_00000..v_<count-1>, titles derived from the index, a uniform genre,
// a duration in [30, 3600] seconds and a random (not necessarily unique)
// patent id.
func GenerateVideos(src *Source, count int) []models.Video {
	videos := make([]models.Video, 0, count)
	for i := 0; i < count; i++ {
		videos = append(videos, models.Video{
			VideoID:         fmt.Sprintf("v_%05d", i),
			Title:           fmt.Sprintf("Video %d", i),
			Genre:           src.Choice(genres),
			DurationSeconds: src.IntBetween(30, 3600),
			PatentID:        fmt.Sprintf("pat_%d", src.IntBetween(1000, 9999)),
		})
	}
	return videos
}

// GenerateDevices builds the devices reference table as the full cross
// product of device types, models and OS versions. No randomness: the table
// always has len(deviceTypes) * len(deviceModels) * len(osVersions) rows in
// nested-loop order.
func GenerateDevices() []models.Device {
	devices := make([]models.Device, 0, len(deviceTypes)*len(deviceModels)*len(osVersions))
	for _, d := range deviceTypes {
		for _, m := range deviceModels {
			for _, o := range osVersions {
				devices = append(devices, models.Device{
					Device:      d,
					DeviceModel: m,
					OSVersion:   o,
				})
			}
		}
	}
	return devices
}

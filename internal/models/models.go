// Streamforge - Synthetic Streaming Analytics Dataset Generator
// Copyright 2026 M. Verhoeven (mverhoeven)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mverhoeven/streamforge

// Package models defines the record types that make up a generated dataset:
// users, videos and devices (the reference tables) plus the event stream.
//
// Field order matters. The CSV headers and the JSON key order of Event are
// part of the output contract consumed by downstream analytics tooling, so
// struct fields are declared in serialization order and the *CSVHeader
// variables must stay in sync with the corresponding Row methods.
package models

import "strconv"

// User is one row of the users reference table.
type User struct {
	UserID           string `json:"user_id"`
	SignupDate       string `json:"signup_date"`
	SubscriptionTier string `json:"subscription_tier"`
	AgeGroup         string `json:"age_group"`
	Gender           string `json:"gender"`
}

// UserCSVHeader is the header row written to users.csv.
var UserCSVHeader = []string{"user_id", "signup_date", "subscription_tier", "age_group", "gender"}

// Row returns the CSV field values in header order.
func (u User) Row() []string {
	return []string{u.UserID, u.SignupDate, u.SubscriptionTier, u.AgeGroup, u.Gender}
}

// Video is one row of the videos reference table.
//
// PatentID is an opaque categorical attribute with no uniqueness guarantee;
// downstream consumers must not treat it as a key.
type Video struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Genre           string `json:"genre"`
	DurationSeconds int    `json:"duration_seconds"`
	PatentID        string `json:"patent_id"`
}

// VideoCSVHeader is the header row written to videos.csv.
var VideoCSVHeader = []string{"video_id", "title", "genre", "duration_seconds", "patent_id"}

// Row returns the CSV field values in header order.
func (v Video) Row() []string {
	return []string{v.VideoID, v.Title, v.Genre, strconv.Itoa(v.DurationSeconds), v.PatentID}
}

// Device is one row of the devices reference table. The table is the full
// cross product of device types, models and OS versions, so it always has a
// fixed cardinality regardless of generator configuration.
type Device struct {
	Device      string `json:"device"`
	DeviceModel string `json:"device_model"`
	OSVersion   string `json:"os_version"`
}

// DeviceCSVHeader is the header row written to devices.csv.
var DeviceCSVHeader = []string{"device", "device_model", "os_version"}

// Row returns the CSV field values in header order.
func (d Device) Row() []string {
	return []string{d.Device, d.DeviceModel, d.OSVersion}
}

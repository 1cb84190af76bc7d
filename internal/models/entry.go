// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package models defines data structures used throughout the Cinelog application.
// These models represent watched-entry records, resolved date ranges, aggregated
// insight results, and API responses.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Location categorizes where a movie was watched.
type Location string

// Location categories. The set is closed; unknown values imported from
// external sources are preserved as-is but grouped under LocationOther
// by the insights engine.
const (
	LocationHome        Location = "home"
	LocationTheater     Location = "theater"
	LocationFriendsHome Location = "friends_home"
	LocationOther       Location = "other"
)

// TimeOfDay categorizes when during the day a movie was watched.
type TimeOfDay string

// Time-of-day categories.
const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// WatchedDateLayout is the calendar-date format used by WatchedEntry.WatchedDate.
// Watched dates carry no time component.
const WatchedDateLayout = "2006-01-02"

// WatchedEntry represents a single logged movie viewing.
//
// This is the core data model consumed read-only by the insights engine.
// Optional fields use pointers so "not recorded" is distinguishable from zero:
// a missing duration is excluded from watch-time averages rather than counted
// as zero minutes (same rule for spend and rating).
//
// WatchedDate is stored as a plain YYYY-MM-DD string rather than a time.Time.
// Imported records may carry malformed dates; keeping the raw string lets the
// insights engine apply its fail-soft policy (silent exclusion from date-scoped
// aggregates) instead of rejecting the record at the storage boundary.
type WatchedEntry struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`

	// Rating is 0-10. The current UI only produces even values but nothing
	// downstream may assume parity.
	Rating *int `json:"rating,omitempty"`

	WatchedDate string   `json:"watched_date"`
	Location    Location `json:"location"`

	// Companions is a comma-separated list of free-text names.
	Companions string `json:"companions,omitempty"`

	SpendCents      *int      `json:"spend_cents,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	Genre           string    `json:"genre,omitempty"`
	Language        string    `json:"language,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Date parses the entry's watched date as a local calendar date.
// The second return value is false when the date is malformed; callers
// are expected to skip such records rather than fail.
func (e *WatchedEntry) Date() (time.Time, bool) {
	t, err := time.ParseInLocation(WatchedDateLayout, e.WatchedDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

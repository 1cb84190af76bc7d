// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"testing"
	"time"

	"github.com/kmoraz/cinelog/internal/models"
)

func entryDaysAgo(now time.Time, days int) models.WatchedEntry {
	return models.WatchedEntry{
		Title:       "Movie",
		WatchedDate: now.AddDate(0, 0, -days).Format(models.WatchedDateLayout),
	}
}

func TestStreaksEmptySnapshot(t *testing.T) {
	current, best := Streaks(nil, time.Now())
	if current != 0 || best != 0 {
		t.Errorf("Streaks(nil) = %d/%d, want 0/0", current, best)
	}
}

func TestStreaksCurrentRun(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	// Entries today and exactly one and two weeks back: three consecutive weeks.
	snapshot := []models.WatchedEntry{
		entryDaysAgo(now, 0),
		entryDaysAgo(now, 7),
		entryDaysAgo(now, 14),
	}
	current, best := Streaks(snapshot, now)
	if current != 3 {
		t.Errorf("current = %d, want 3", current)
	}
	if best != 3 {
		t.Errorf("best = %d, want 3", best)
	}
}

func TestStreaksGraceWeek(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	// Nothing this week, but activity in the previous two: the streak holds.
	snapshot := []models.WatchedEntry{
		entryDaysAgo(now, 7),
		entryDaysAgo(now, 14),
	}
	current, _ := Streaks(snapshot, now)
	if current != 2 {
		t.Errorf("current = %d, want 2 (one week of grace)", current)
	}
}

func TestStreaksBrokenByGap(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	// Only activity five weeks ago: no current streak, best of one week.
	snapshot := []models.WatchedEntry{entryDaysAgo(now, 35)}
	current, best := Streaks(snapshot, now)
	if current != 0 {
		t.Errorf("current = %d, want 0", current)
	}
	if best != 1 {
		t.Errorf("best = %d, want 1", best)
	}
}

func TestStreaksBestRunInThePast(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	// One watch this week, plus a four-week run ten weeks back.
	snapshot := []models.WatchedEntry{
		entryDaysAgo(now, 0),
		entryDaysAgo(now, 70),
		entryDaysAgo(now, 77),
		entryDaysAgo(now, 84),
		entryDaysAgo(now, 91),
	}
	current, best := Streaks(snapshot, now)
	if current != 1 {
		t.Errorf("current = %d, want 1", current)
	}
	if best != 4 {
		t.Errorf("best = %d, want 4", best)
	}
}

func TestStreaksMultipleWatchesSameWeek(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	// Several watches in the same week count as one active week.
	snapshot := []models.WatchedEntry{
		entryDaysAgo(now, 0),
		entryDaysAgo(now, 0),
		entryDaysAgo(now, 1),
	}
	// Days 0 and 1 back may straddle a week boundary; with both anchored on
	// now's date the current streak is at least 1 and at most 2.
	current, best := Streaks(snapshot, now)
	if current < 1 || current > 2 {
		t.Errorf("current = %d, want 1 or 2", current)
	}
	if best < 1 || best > 2 {
		t.Errorf("best = %d, want 1 or 2", best)
	}
}

func TestStreaksSkipMalformedDates(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	snapshot := []models.WatchedEntry{
		{Title: "Bad", WatchedDate: "someday"},
	}
	current, best := Streaks(snapshot, now)
	if current != 0 || best != 0 {
		t.Errorf("Streaks = %d/%d, want 0/0 for malformed-only snapshot", current, best)
	}
}

func TestWeekIndexConsecutive(t *testing.T) {
	d := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	if weekIndex(d)-weekIndex(d.AddDate(0, 0, -7)) != 1 {
		t.Error("dates seven days apart should map to adjacent week indexes")
	}
	if weekIndex(d) != weekIndex(d.Add(23*time.Hour)) {
		t.Error("same calendar date must map to the same week regardless of time")
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{7, 7, 1},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
		{13, 7, 1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

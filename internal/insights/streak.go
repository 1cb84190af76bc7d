// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"sort"
	"time"

	"github.com/kmoraz/cinelog/internal/models"
)

// Streaks computes the current and best-ever consecutive-week activity
// streaks over the full snapshot. Streaks are always all-time and ignore the
// selected range by design.
//
// Weeks are identified by an integer epoch-week index (days since the Unix
// epoch divided by seven, floored). The current streak starts from the week
// containing now; if that week has no activity yet, counting starts one week
// back (one week of grace). Entries with malformed watched dates are skipped.
func Streaks(snapshot []models.WatchedEntry, now time.Time) (current, best int) {
	active := make(map[int]bool)
	for i := range snapshot {
		d, ok := snapshot[i].Date()
		if !ok {
			continue
		}
		active[weekIndex(d)] = true
	}
	if len(active) == 0 {
		return 0, 0
	}

	w := weekIndex(now)
	if !active[w] {
		w--
	}
	for active[w] {
		current++
		w--
	}

	weeks := make([]int, 0, len(active))
	for idx := range active {
		weeks = append(weeks, idx)
	}
	sort.Ints(weeks)

	run := 1
	best = 1
	for i := 1; i < len(weeks); i++ {
		if weeks[i] == weeks[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return current, best
}

// weekIndex maps a local calendar date to its epoch-week index. Floor
// division keeps pre-1970 dates on the same week grid.
func weekIndex(t time.Time) int {
	y, m, d := t.Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return int(floorDiv(floorDiv(secs, 86400), 7))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

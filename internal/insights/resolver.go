// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"fmt"
	"time"

	"github.com/kmoraz/cinelog/internal/models"
)

// RangeKind identifies a named period or a custom interval.
type RangeKind string

// Supported range selectors. The string values double as cache keys for
// named periods and as the persisted form of the last-selected range.
const (
	RangeThisMonth   RangeKind = "this_month"
	RangeLast3Months RangeKind = "last_3_months"
	RangeThisYear    RangeKind = "this_year"
	RangeAllTime     RangeKind = "all_time"
	RangeCustom      RangeKind = "custom"
)

// ParseRangeKind maps a selector string to a RangeKind. Unknown values fall
// back to all-time so a stale persisted selector can never fail resolution.
func ParseRangeKind(s string) RangeKind {
	switch RangeKind(s) {
	case RangeThisMonth, RangeLast3Months, RangeThisYear, RangeAllTime, RangeCustom:
		return RangeKind(s)
	default:
		return RangeAllTime
	}
}

// Selector is a range selection request: a named period, or RangeCustom with
// explicit Start/End boundaries.
type Selector struct {
	Kind  RangeKind
	Start time.Time
	End   time.Time
}

// Resolve maps a selector to a concrete [start, end] interval plus, where
// applicable, the previous same-length comparison window.
//
// Resolution never fails: an inverted custom range is swapped rather than
// rejected, and unknown kinds resolve as all-time. Only the all-time range
// has no previous window.
func Resolve(sel Selector, now time.Time) models.ResolvedRange {
	switch sel.Kind {
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
		return models.ResolvedRange{
			Start: start,
			End:   end,
			Previous: &models.Window{
				Start: start.AddDate(0, -1, 0),
				End:   start.Add(-time.Nanosecond),
			},
			Label: "This month",
			Key:   string(RangeThisMonth),
		}

	case RangeLast3Months:
		start := now.AddDate(0, -3, 0)
		return models.ResolvedRange{
			Start:    start,
			End:      now,
			Previous: precedingWindow(start, now),
			Label:    "Last 3 months",
			Key:      string(RangeLast3Months),
		}

	case RangeThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return models.ResolvedRange{
			Start: start,
			End:   now,
			Previous: &models.Window{
				Start: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()),
				End:   now.AddDate(-1, 0, 0),
			},
			Label: "This year",
			Key:   string(RangeThisYear),
		}

	case RangeCustom:
		start, end := sel.Start, sel.End
		if end.Before(start) {
			start, end = end, start
		}
		return models.ResolvedRange{
			Start:    start,
			End:      end,
			Previous: precedingWindow(start, end),
			Label:    fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
			Key:      fmt.Sprintf("custom:%d:%d", start.Unix(), end.Unix()),
		}

	default: // RangeAllTime and anything unrecognized
		return models.ResolvedRange{
			Start: time.Time{},
			End:   now,
			Label: "All time",
			Key:   string(RangeAllTime),
		}
	}
}

// precedingWindow returns the equal-duration window immediately before start.
func precedingWindow(start, end time.Time) *models.Window {
	return &models.Window{
		Start: start.Add(-end.Sub(start)),
		End:   start.Add(-time.Nanosecond),
	}
}

// comparisonLabel names the previous window of a resolved range for use in
// narrative text ("... than last month").
func comparisonLabel(rr models.ResolvedRange) string {
	switch RangeKind(rr.Key) {
	case RangeThisMonth:
		return "last month"
	case RangeLast3Months:
		return "the previous 3 months"
	case RangeThisYear:
		return "this time last year"
	default:
		return "the previous period"
	}
}

// isAllTime reports whether a resolved range covers all history.
func isAllTime(rr models.ResolvedRange) bool {
	return rr.Key == string(RangeAllTime)
}

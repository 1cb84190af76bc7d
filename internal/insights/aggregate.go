// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/kmoraz/cinelog/internal/models"
)

// Aggregate filters the snapshot to the resolved range and computes every
// range-scoped metric of the insights result, plus the all-history monthly
// trend buckets. The hero insight, narrative insights, and streaks are
// filled in separately by Compute.
//
// Entries whose watched date does not parse are excluded from range
// membership and from the month-key derivation, per the engine's fail-soft
// policy. Missing optional fields (duration, spend) are excluded from sums
// and averages rather than treated as zero.
func Aggregate(snapshot []models.WatchedEntry, rr models.ResolvedRange) models.InsightsResult {
	res := models.InsightsResult{
		Range:        rr,
		AllTimeCount: len(snapshot),
	}

	locations := newKeyCounter(
		string(models.LocationHome),
		string(models.LocationTheater),
		string(models.LocationFriendsHome),
		string(models.LocationOther),
	)
	timesOfDay := newKeyCounter()
	genres := newKeyCounter()
	languages := newKeyCounter()
	companions := newKeyCounter()
	months := map[string]*models.MonthBucket{}

	currentCount := 0
	previousCount := 0
	durationSum, durationN := 0, 0
	spendSum, spendN := 0, 0
	theaterSpendSum, theaterSpendN := 0, 0

	for i := range snapshot {
		e := &snapshot[i]
		d, ok := e.Date()
		if !ok {
			continue // malformed watched date: skip everywhere
		}

		// Monthly trend buckets cover the entire history, not just the range.
		ym := d.Format("2006-01")
		b := months[ym]
		if b == nil {
			b = &models.MonthBucket{YearMonth: ym}
			months[ym] = b
		}
		b.Count++
		if e.SpendCents != nil {
			b.SpendCents += *e.SpendCents
		}
		if e.DurationMinutes != nil {
			b.WatchMinutes += *e.DurationMinutes
		}

		if rr.Previous != nil && inWindow(d, rr.Previous.Start, rr.Previous.End) {
			previousCount++
		}
		if !inWindow(d, rr.Start, rr.End) {
			continue
		}
		currentCount++

		if e.DurationMinutes != nil {
			durationSum += *e.DurationMinutes
			durationN++
		}
		if e.SpendCents != nil {
			spendSum += *e.SpendCents
			spendN++
			if e.Location == models.LocationTheater {
				theaterSpendSum += *e.SpendCents
				theaterSpendN++
			}
		}

		locations.add(locationKey(e.Location))
		if tod := string(e.TimeOfDay); tod != "" {
			timesOfDay.add(tod)
		}
		if g := strings.TrimSpace(e.Genre); g != "" {
			genres.add(g)
		}
		if e.Language != "" {
			languages.add(e.Language)
		}
		// Companions are counted per name, not per entry: "Alice, Bob"
		// contributes one to Alice and one to Bob. No dedup within an entry.
		for _, name := range strings.Split(e.Companions, ",") {
			if name = strings.TrimSpace(name); name != "" {
				companions.add(name)
			}
		}

		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			res.WeekendCount++
		} else {
			res.WeekdayCount++
		}
	}

	res.MoviesCount = newComparison(currentCount, previousCount)
	res.WatchTimeMinutes = durationSum
	res.AvgDurationMinutes = avg(durationSum, durationN)
	res.SpendCentsTotal = spendSum
	res.AvgSpendCents = avg(spendSum, spendN)
	res.HasSpendData = spendN > 0
	res.TheaterAvgSpendCents = avg(theaterSpendSum, theaterSpendN)
	res.Locations = locations.sorted()
	res.TimesOfDay = timesOfDay.sorted()
	res.Genres = genres.sorted()
	res.Languages = languages.sorted()
	res.Companions = companions.sorted()
	res.MonthlyTrend = sortedMonths(months)

	return res
}

// inWindow reports whether a calendar date falls inside [start, end].
func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// locationKey normalizes unknown location values into the "other" bucket so
// the location split always covers exactly the four known categories.
func locationKey(l models.Location) string {
	switch l {
	case models.LocationHome, models.LocationTheater, models.LocationFriendsHome:
		return string(l)
	default:
		return string(models.LocationOther)
	}
}

// newComparison builds a PeriodComparison with defined-everywhere percent
// semantics: a zero previous maps to 100 when current is positive, else 0.
func newComparison(current, previous int) models.PeriodComparison {
	c := models.PeriodComparison{
		Current:      current,
		Previous:     previous,
		Delta:        current - previous,
		DeltaPercent: deltaPercent(current, previous),
	}
	switch {
	case c.Delta > 0:
		c.Direction = models.DirectionUp
	case c.Delta < 0:
		c.Direction = models.DirectionDown
	default:
		c.Direction = models.DirectionFlat
	}
	return c
}

// deltaPercent returns the signed percent change from previous to current.
// Never NaN or infinite for any input pair, including (0, 0).
func deltaPercent(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(100 * float64(current-previous) / float64(previous)))
}

// percentOf returns round(100*part/whole), defined as 0 when whole is 0.
func percentOf(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// avg divides a sum by a count of contributing entries, 0 if none contributed.
func avg(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// keyCounter groups values by category preserving first-encountered order,
// so descending count sorts break ties stably.
type keyCounter struct {
	counts map[string]int
	order  []string
}

// newKeyCounter creates a counter, optionally pre-seeding categories so they
// appear with zero counts and a fixed tie-break order.
func newKeyCounter(seed ...string) *keyCounter {
	k := &keyCounter{counts: make(map[string]int)}
	for _, s := range seed {
		k.counts[s] = 0
		k.order = append(k.order, s)
	}
	return k
}

func (k *keyCounter) add(category string) {
	if _, seen := k.counts[category]; !seen {
		k.order = append(k.order, category)
	}
	k.counts[category]++
}

// sorted returns the distribution descending by count, ties in insertion order.
func (k *keyCounter) sorted() []models.KeyCount {
	out := make([]models.KeyCount, 0, len(k.order))
	for _, category := range k.order {
		out = append(out, models.KeyCount{Category: category, Count: k.counts[category]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// sortedMonths flattens the month bucket map ascending by year-month key.
func sortedMonths(months map[string]*models.MonthBucket) []models.MonthBucket {
	out := make([]models.MonthBucket, 0, len(months))
	for _, b := range months {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].YearMonth < out[j].YearMonth })
	return out
}

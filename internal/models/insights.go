// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package models

import (
	"time"
)

// Window is a concrete start/end interval. Start <= End always holds.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolvedRange is the output of date-range resolution: a concrete interval,
// an optional previous same-length comparison window, and a stable identity
// key used for caching.
//
// Previous is nil only for the all-time range, where no comparison window
// is possible or meaningful.
type ResolvedRange struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Previous *Window   `json:"previous,omitempty"`
	Label    string    `json:"label"`
	Key      string    `json:"key"`
}

// KeyCount is a (category, count) pair used for all categorical distributions.
// Lists of KeyCount are always delivered sorted descending by count, ties
// broken by first-encountered order in the grouping pass.
type KeyCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthBucket aggregates one calendar month of all-time history for trend
// charts. Buckets exist only for months with at least one entry and are
// sorted ascending by YearMonth.
type MonthBucket struct {
	YearMonth    string `json:"year_month"` // "YYYY-MM"
	Count        int    `json:"count"`
	SpendCents   int    `json:"spend_cents"`
	WatchMinutes int    `json:"watch_minutes"`
}

// Trend directions for period-over-period comparisons.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// PeriodComparison compares a count between the current and previous window.
//
// DeltaPercent is defined for every (current, previous) pair: when previous
// is 0 it is 100 if current > 0, else 0. It never yields NaN or infinity.
type PeriodComparison struct {
	Current      int    `json:"current"`
	Previous     int    `json:"previous"`
	Delta        int    `json:"delta"`
	DeltaPercent int    `json:"delta_percent"`
	Direction    string `json:"direction"` // "up", "down", "flat"
}

// HeroType identifies which headline insight was selected for the range.
type HeroType string

// Hero insight types, in cascade priority order.
const (
	HeroJustStarting HeroType = "just_starting"
	HeroVolumeTrend  HeroType = "volume_trend"
	HeroTimeOfDay    HeroType = "time_of_day"
	HeroSpending     HeroType = "spending"
)

// HeroInsight is the single headline insight chosen for the active range.
// Exactly one is always present on an InsightsResult; the field set that is
// meaningful depends on Type.
type HeroInsight struct {
	Type HeroType `json:"type"`

	// just_starting / volume_trend
	Count       int    `json:"count"`
	Delta       int    `json:"delta,omitempty"`
	PeriodLabel string `json:"period_label,omitempty"`

	// time_of_day
	Category string `json:"category,omitempty"`
	Percent  int    `json:"percent,omitempty"`

	// spending
	TotalSpendCents int     `json:"total_spend_cents,omitempty"`
	AvgSpendCents   float64 `json:"avg_spend_cents,omitempty"`
}

// SmartInsight is one narrative observation derived from aggregated metrics.
// Kind plus Value form the machine-checkable derivation; Text is the human
// explanation.
type SmartInsight struct {
	Kind  string  `json:"kind"`
	Text  string  `json:"text"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Smart insight kinds, in fixed generation order.
const (
	InsightVolumeTrend = "volume_trend"
	InsightAvgDuration = "avg_duration"
	InsightTopGenre    = "top_genre"
	InsightTimeOfDay   = "time_of_day"
	InsightWeekdaySkew = "weekday_skew"
	InsightSpending    = "spending"
	InsightBestStreak  = "best_streak"
)

// InsightsResult is the engine's complete output for one (snapshot, range)
// computation. It is immutable after construction: recomputation produces a
// new value, it never edits an existing one.
type InsightsResult struct {
	Range ResolvedRange `json:"range"`
	Hero  HeroInsight   `json:"hero"`

	MoviesCount PeriodComparison `json:"movies_count"`

	// Watch time. Totals exclude entries with no recorded duration; the
	// average divides by the count of entries that have one (0 if none).
	WatchTimeMinutes   int     `json:"watch_time_minutes"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`

	// Spend, with the same exclusion-on-missing rule.
	SpendCentsTotal      int     `json:"spend_cents_total"`
	AvgSpendCents        float64 `json:"avg_spend_cents"`
	HasSpendData         bool    `json:"has_spend_data"`
	TheaterAvgSpendCents float64 `json:"theater_avg_spend_cents"`

	Locations    []KeyCount `json:"locations"`
	WeekdayCount int        `json:"weekday_count"`
	WeekendCount int        `json:"weekend_count"`
	TimesOfDay   []KeyCount `json:"times_of_day"`
	Genres       []KeyCount `json:"genres"`
	Languages    []KeyCount `json:"languages"`
	Companions   []KeyCount `json:"companions"`

	MonthlyTrend []MonthBucket `json:"monthly_trend"`

	CurrentStreakWeeks int `json:"current_streak_weeks"`
	BestStreakWeeks    int `json:"best_streak_weeks"`

	SmartInsights []SmartInsight `json:"smart_insights"`

	// AllTimeCount is the size of the full snapshot, used for empty-state
	// and "just starting" detection independent of the selected range.
	AllTimeCount int `json:"all_time_count"`

	GeneratedAt time.Time `json:"generated_at"`
}

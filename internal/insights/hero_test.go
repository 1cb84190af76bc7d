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

func allTimeRange() models.ResolvedRange {
	return Resolve(Selector{Kind: RangeAllTime}, time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local))
}

func monthRange() models.ResolvedRange {
	return Resolve(Selector{Kind: RangeThisMonth}, time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local))
}

func TestSelectHeroJustStarting(t *testing.T) {
	res := &models.InsightsResult{
		Range:        monthRange(),
		AllTimeCount: 3,
		MoviesCount:  newComparison(3, 0),
	}
	hero := SelectHero(res)
	if hero.Type != models.HeroJustStarting {
		t.Errorf("Type = %q, want just_starting", hero.Type)
	}
	if hero.Count != 3 {
		t.Errorf("Count = %d, want 3", hero.Count)
	}
}

func TestSelectHeroVolumeTrend(t *testing.T) {
	res := &models.InsightsResult{
		Range:        monthRange(),
		AllTimeCount: 20,
		MoviesCount:  newComparison(8, 5),
	}
	hero := SelectHero(res)
	if hero.Type != models.HeroVolumeTrend {
		t.Errorf("Type = %q, want volume_trend", hero.Type)
	}
	if hero.Count != 8 || hero.Delta != 3 {
		t.Errorf("Count/Delta = %d/%d, want 8/3", hero.Count, hero.Delta)
	}
	if hero.PeriodLabel != "last month" {
		t.Errorf("PeriodLabel = %q, want last month", hero.PeriodLabel)
	}
}

func TestSelectHeroTimeOfDayDominance(t *testing.T) {
	// All-time range skips the volume-trend rule; a 50% evening share
	// crosses the dominance threshold.
	res := &models.InsightsResult{
		Range:        allTimeRange(),
		AllTimeCount: 10,
		MoviesCount:  newComparison(10, 0),
		TimesOfDay: []models.KeyCount{
			{Category: "evening", Count: 5},
			{Category: "morning", Count: 3},
			{Category: "night", Count: 2},
		},
	}
	hero := SelectHero(res)
	if hero.Type != models.HeroTimeOfDay {
		t.Fatalf("Type = %q, want time_of_day", hero.Type)
	}
	if hero.Category != "evening" || hero.Percent != 50 || hero.Count != 5 {
		t.Errorf("hero = %+v, want evening 50%% of 5", hero)
	}
}

func TestSelectHeroBelowDominanceFallsThrough(t *testing.T) {
	res := &models.InsightsResult{
		Range:           allTimeRange(),
		AllTimeCount:    10,
		MoviesCount:     newComparison(10, 0),
		TimesOfDay:      []models.KeyCount{{Category: "evening", Count: 3}, {Category: "morning", Count: 3}},
		HasSpendData:    true,
		SpendCentsTotal: 4200,
		AvgSpendCents:   420,
	}
	hero := SelectHero(res)
	if hero.Type != models.HeroSpending {
		t.Fatalf("Type = %q, want spending (30%% is below dominance)", hero.Type)
	}
	if hero.TotalSpendCents != 4200 {
		t.Errorf("TotalSpendCents = %d, want 4200", hero.TotalSpendCents)
	}
}

func TestSelectHeroFallbackVolumeTrend(t *testing.T) {
	// All-time, no time-of-day data, no spend: the terminal rule fires.
	res := &models.InsightsResult{
		Range:        allTimeRange(),
		AllTimeCount: 10,
		MoviesCount:  newComparison(10, 0),
	}
	hero := SelectHero(res)
	if hero.Type != models.HeroVolumeTrend {
		t.Errorf("Type = %q, want volume_trend fallback", hero.Type)
	}
	if hero.PeriodLabel != "" {
		t.Errorf("PeriodLabel = %q, want empty for all-time", hero.PeriodLabel)
	}
}

func TestSelectHeroIgnoresUnrecordedTimeOfDay(t *testing.T) {
	// Six entries, none with a time of day: no blank category may become
	// dominant, so the cascade must fall past the time-of-day rule.
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.Local)
	snapshot := make([]models.WatchedEntry, 6)
	for i := range snapshot {
		snapshot[i] = models.WatchedEntry{
			Title:       "Movie",
			WatchedDate: now.AddDate(0, 0, -i).Format(models.WatchedDateLayout),
			Location:    models.LocationHome,
		}
	}

	res := Compute(snapshot, Selector{Kind: RangeAllTime}, now)

	if res.Hero.Type == models.HeroTimeOfDay {
		t.Fatalf("hero = %+v, time-of-day hero selected with no recorded categories", res.Hero)
	}
	for _, ins := range res.SmartInsights {
		if ins.Kind == models.InsightTimeOfDay {
			t.Errorf("time-of-day narrated without data: %q", ins.Text)
		}
	}
}

func TestDominantTimeOfDayEmpty(t *testing.T) {
	res := &models.InsightsResult{MoviesCount: newComparison(0, 0)}
	if _, _, ok := dominantTimeOfDay(res); ok {
		t.Error("dominantTimeOfDay = true on empty result")
	}
}

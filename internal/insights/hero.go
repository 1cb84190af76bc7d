// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"github.com/kmoraz/cinelog/internal/models"
)

// DominanceThresholdPercent is the minimum share a single time-of-day
// category must hold before it is treated as dominant, both for hero
// selection and for the narrator's time-of-day rule. The value is a
// heuristic carried over from the product, not a law of the domain.
const DominanceThresholdPercent = 40

// MinEntriesForTrends is the all-time entry count below which the engine
// presents absolute counts only. Percentages on tiny samples are noise.
const MinEntriesForTrends = 5

// heroRule pairs a predicate with a builder. Rules are evaluated in order;
// the first match wins.
type heroRule struct {
	match func(res *models.InsightsResult) bool
	build func(res *models.InsightsResult) models.HeroInsight
}

// heroCascade is the fixed priority order for headline selection. The final
// rule always matches, so a hero is always defined.
var heroCascade = []heroRule{
	{
		// Tiny all-time history: show the absolute count, no comparisons.
		match: func(res *models.InsightsResult) bool {
			return res.AllTimeCount < MinEntriesForTrends
		},
		build: func(res *models.InsightsResult) models.HeroInsight {
			return models.HeroInsight{Type: models.HeroJustStarting, Count: res.AllTimeCount}
		},
	},
	{
		match: func(res *models.InsightsResult) bool {
			return !isAllTime(res.Range) &&
				(res.MoviesCount.Current > 0 || res.MoviesCount.Previous > 0)
		},
		build: buildVolumeTrendHero,
	},
	{
		match: func(res *models.InsightsResult) bool {
			_, _, ok := dominantTimeOfDay(res)
			return ok
		},
		build: func(res *models.InsightsResult) models.HeroInsight {
			top, pct, _ := dominantTimeOfDay(res)
			return models.HeroInsight{
				Type:     models.HeroTimeOfDay,
				Category: top.Category,
				Percent:  pct,
				Count:    top.Count,
			}
		},
	},
	{
		match: func(res *models.InsightsResult) bool {
			return res.HasSpendData && res.SpendCentsTotal > 0
		},
		build: func(res *models.InsightsResult) models.HeroInsight {
			return models.HeroInsight{
				Type:            models.HeroSpending,
				TotalSpendCents: res.SpendCentsTotal,
				AvgSpendCents:   res.AvgSpendCents,
			}
		},
	},
	{
		// Fallback: a volume trend with zero delta beats no hero at all.
		match: func(*models.InsightsResult) bool { return true },
		build: buildVolumeTrendHero,
	},
}

// SelectHero chooses exactly one headline insight for the aggregated result.
func SelectHero(res *models.InsightsResult) models.HeroInsight {
	for _, rule := range heroCascade {
		if rule.match(res) {
			return rule.build(res)
		}
	}
	// Unreachable: the cascade ends with an always-true rule.
	return buildVolumeTrendHero(res)
}

func buildVolumeTrendHero(res *models.InsightsResult) models.HeroInsight {
	hero := models.HeroInsight{
		Type:  models.HeroVolumeTrend,
		Count: res.MoviesCount.Current,
		Delta: res.MoviesCount.Delta,
	}
	if res.Range.Previous != nil {
		hero.PeriodLabel = comparisonLabel(res.Range)
	}
	return hero
}

// dominantTimeOfDay returns the top time-of-day bucket when it holds at
// least DominanceThresholdPercent of in-range entries.
func dominantTimeOfDay(res *models.InsightsResult) (models.KeyCount, int, bool) {
	if len(res.TimesOfDay) == 0 || res.MoviesCount.Current == 0 {
		return models.KeyCount{}, 0, false
	}
	top := res.TimesOfDay[0]
	pct := percentOf(top.Count, res.MoviesCount.Current)
	if pct < DominanceThresholdPercent {
		return models.KeyCount{}, 0, false
	}
	return top, pct, true
}

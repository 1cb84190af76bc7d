// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/kmoraz/cinelog/internal/models"
)

// MaxSmartInsights caps the narrative list. When more rules fire, the first
// six in generation order are kept and later ones dropped, never reordered.
const MaxSmartInsights = 6

// significantDropPercent is how far a downward volume trend must move before
// it is worth narrating. Upward trends are always narrated.
const significantDropPercent = 20

// narratorRule produces one narrative statement when its guard holds.
type narratorRule func(res *models.InsightsResult) (models.SmartInsight, bool)

// narratorRules is the fixed generation order. A rule whose guard fails is
// omitted; remaining rules are not reordered or backfilled.
var narratorRules = []narratorRule{
	narrateVolumeTrend,
	narrateAvgDuration,
	narrateTopGenre,
	narrateTimeOfDay,
	narrateWeekdaySkew,
	narrateSpending,
	narrateBestStreak,
}

// Narrate generates the ordered, capped list of narrative insights from the
// aggregated metrics. Small all-time histories get a "So far, " prefix on
// every statement.
func Narrate(res *models.InsightsResult) []models.SmartInsight {
	out := make([]models.SmartInsight, 0, MaxSmartInsights)
	for _, rule := range narratorRules {
		if len(out) == MaxSmartInsights {
			break
		}
		ins, ok := rule(res)
		if !ok {
			continue
		}
		if res.AllTimeCount < MinEntriesForTrends {
			ins.Text = "So far, " + lowerFirst(ins.Text)
		}
		out = append(out, ins)
	}
	return out
}

func narrateVolumeTrend(res *models.InsightsResult) (models.SmartInsight, bool) {
	mc := res.MoviesCount
	if isAllTime(res.Range) || mc.Previous == 0 {
		return models.SmartInsight{}, false
	}
	pct := mc.DeltaPercent
	switch {
	case mc.Direction == models.DirectionUp && pct > 0:
		return models.SmartInsight{
			Kind:  models.InsightVolumeTrend,
			Text:  fmt.Sprintf("You watched %d%% more movies than %s.", pct, comparisonLabel(res.Range)),
			Value: float64(pct),
			Unit:  "%",
		}, true
	case mc.Direction == models.DirectionDown && abs(pct) > significantDropPercent:
		return models.SmartInsight{
			Kind:  models.InsightVolumeTrend,
			Text:  fmt.Sprintf("You watched %d%% fewer movies than %s.", abs(pct), comparisonLabel(res.Range)),
			Value: float64(pct),
			Unit:  "%",
		}, true
	}
	return models.SmartInsight{}, false
}

func narrateAvgDuration(res *models.InsightsResult) (models.SmartInsight, bool) {
	if res.AvgDurationMinutes <= 0 {
		return models.SmartInsight{}, false
	}
	return models.SmartInsight{
		Kind:  models.InsightAvgDuration,
		Text:  fmt.Sprintf("Your average movie runs %s.", formatMinutes(res.AvgDurationMinutes)),
		Value: res.AvgDurationMinutes,
		Unit:  "min",
	}, true
}

func narrateTopGenre(res *models.InsightsResult) (models.SmartInsight, bool) {
	if len(res.Genres) == 0 {
		return models.SmartInsight{}, false
	}
	tagged := 0
	for _, g := range res.Genres {
		tagged += g.Count
	}
	top := res.Genres[0]
	pct := percentOf(top.Count, tagged)
	return models.SmartInsight{
		Kind:  models.InsightTopGenre,
		Text:  fmt.Sprintf("%s leads your genres at %d%%.", top.Category, pct),
		Value: float64(pct),
		Unit:  "%",
	}, true
}

func narrateTimeOfDay(res *models.InsightsResult) (models.SmartInsight, bool) {
	top, pct, ok := dominantTimeOfDay(res)
	if !ok {
		return models.SmartInsight{}, false
	}
	return models.SmartInsight{
		Kind:  models.InsightTimeOfDay,
		Text:  fmt.Sprintf("Most of your watching happens in the %s (%d%%).", top.Category, pct),
		Value: float64(pct),
		Unit:  "%",
	}, true
}

func narrateWeekdaySkew(res *models.InsightsResult) (models.SmartInsight, bool) {
	total := res.WeekdayCount + res.WeekendCount
	switch {
	case res.WeekendCount > res.WeekdayCount:
		return models.SmartInsight{
			Kind:  models.InsightWeekdaySkew,
			Text:  fmt.Sprintf("Weekends are your movie time: %d of %d watches.", res.WeekendCount, total),
			Value: float64(res.WeekendCount),
		}, true
	case res.WeekdayCount > res.WeekendCount:
		return models.SmartInsight{
			Kind:  models.InsightWeekdaySkew,
			Text:  fmt.Sprintf("You mostly watch on weekdays: %d of %d watches.", res.WeekdayCount, total),
			Value: float64(res.WeekdayCount),
		}, true
	}
	return models.SmartInsight{}, false
}

func narrateSpending(res *models.InsightsResult) (models.SmartInsight, bool) {
	if res.SpendCentsTotal <= 0 {
		return models.SmartInsight{}, false
	}
	return models.SmartInsight{
		Kind: models.InsightSpending,
		Text: fmt.Sprintf("You spent %s on movies, about %s per tracked watch.",
			formatCents(res.SpendCentsTotal), formatCents(int(math.Round(res.AvgSpendCents)))),
		Value: float64(res.SpendCentsTotal),
		Unit:  "cents",
	}, true
}

func narrateBestStreak(res *models.InsightsResult) (models.SmartInsight, bool) {
	if res.BestStreakWeeks < 2 {
		return models.SmartInsight{}, false
	}
	return models.SmartInsight{
		Kind: models.InsightBestStreak,
		Text: fmt.Sprintf("Your best streak: %d %s of movie-watching in a row.",
			res.BestStreakWeeks, pluralWeeks(res.BestStreakWeeks)),
		Value: float64(res.BestStreakWeeks),
		Unit:  "weeks",
	}, true
}

// formatMinutes renders a minute quantity as hours+minutes ("2h 5m", "45m").
func formatMinutes(minutes float64) string {
	m := int(math.Round(minutes))
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

// formatCents renders a cent amount as dollars ("$42.50").
func formatCents(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func pluralWeeks(n int) string {
	if n == 1 {
		return "week"
	}
	return "weeks"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/kmoraz/cinelog/internal/cache"
	"github.com/kmoraz/cinelog/internal/metrics"
	"github.com/kmoraz/cinelog/internal/models"
)

// Repository supplies the full watched-entry snapshot. The engine issues no
// writes and applies all filtering itself.
type Repository interface {
	AllEntries(ctx context.Context) ([]models.WatchedEntry, error)
}

// Service is the cache-aware entry point around the pure computation
// pipeline. The cache is the only shared mutable state; results are computed
// first and inserted atomically afterwards, so a concurrent invalidation can
// never expose a half-written entry.
type Service struct {
	repo  Repository
	cache *cache.Cache
	now   func() time.Time
}

// NewService creates an insights service over a repository and memo cache.
func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c, now: time.Now}
}

// Compute runs the full pipeline over a snapshot for the given selector.
// It is pure: no I/O, no shared state, deterministic for a fixed now.
func Compute(snapshot []models.WatchedEntry, sel Selector, now time.Time) *models.InsightsResult {
	return computeResolved(snapshot, Resolve(sel, now), now)
}

func computeResolved(snapshot []models.WatchedEntry, rr models.ResolvedRange, now time.Time) *models.InsightsResult {
	res := Aggregate(snapshot, rr)
	res.CurrentStreakWeeks, res.BestStreakWeeks = Streaks(snapshot, now)
	res.Hero = SelectHero(&res)
	res.SmartInsights = Narrate(&res)
	res.GeneratedAt = now
	return &res
}

// Load returns insights for the selector, serving from the cache unless
// force is set. The second return value reports whether the result came
// from the cache.
func (s *Service) Load(ctx context.Context, sel Selector, force bool) (*models.InsightsResult, bool, error) {
	now := s.now()
	rr := Resolve(sel, now)

	if !force {
		if res, ok := s.cache.Get(rr.Key); ok {
			metrics.InsightsCacheHits.Inc()
			return res, true, nil
		}
		metrics.InsightsCacheMisses.Inc()
	}

	snapshot, err := s.repo.AllEntries(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("load entry snapshot: %w", err)
	}

	start := time.Now()
	res := computeResolved(snapshot, rr, now)
	metrics.InsightsComputeDuration.Observe(time.Since(start).Seconds())

	s.cache.Set(rr.Key, res)
	return res, false, nil
}

// InvalidateAll clears every cached result. Call after any write to the
// underlying entries.
func (s *Service) InvalidateAll() {
	s.cache.Clear()
}

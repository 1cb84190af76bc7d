// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package cache provides the process-local insights memo table. Entries are
// keyed by resolved-range identity and expire after a TTL; Clear drops
// everything whenever the underlying record set may have changed.
package cache

import (
	"sync"
	"time"

	"github.com/kmoraz/cinelog/internal/models"
)

// entry is a cached insights result with expiration.
type entry struct {
	result    *models.InsightsResult
	expiresAt time.Time
}

// Cache is a thread-safe memo table for computed insights results.
//
// The safe usage contract is compute-first, then Set: a cache entry is only
// ever a complete InsightsResult, never a partial one, so an invalidate
// racing a computation can at worst discard a finished result.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	stats   Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	mu        sync.Mutex
	Hits      int64
	Misses    int64
	Evictions int64
	TotalKeys int64
}

// New creates an insights cache whose entries expire after ttl.
// A background goroutine sweeps expired entries every five minutes.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached result for a range key, if present and unexpired.
func (c *Cache) Get(key string) (*models.InsightsResult, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.count(&c.stats.Misses)
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.count(&c.stats.Misses)
		c.count(&c.stats.Evictions)
		return nil, false
	}
	c.count(&c.stats.Hits)
	return e.result, true
}

// Set atomically inserts or replaces the entry for a range key.
func (c *Cache) Set(key string, result *models.InsightsResult) {
	c.mu.Lock()
	c.entries[key] = entry{result: result, expiresAt: time.Now().Add(c.ttl)}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()
}

// Clear removes all entries. Called whenever the entry snapshot may have
// changed, so stale aggregates are never served.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evicted
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.stats.mu.Lock()
	defer c.stats.mu.Unlock()
	return Stats{
		Hits:      c.stats.Hits,
		Misses:    c.stats.Misses,
		Evictions: c.stats.Evictions,
		TotalKeys: c.stats.TotalKeys,
	}
}

// HitRate returns the hit percentage over all lookups.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		c.cleanup()
	}
}

func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()
	evicted := int64(0)
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evicted
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()
}

func (c *Cache) count(counter *int64) {
	c.stats.mu.Lock()
	*counter++
	c.stats.mu.Unlock()
}

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmoraz/cinelog/internal/config"
	"github.com/kmoraz/cinelog/internal/insights"
	"github.com/kmoraz/cinelog/internal/models"
	"github.com/kmoraz/cinelog/internal/settings"
)

// Version is the application version reported by the health endpoint.
// Overridden at build time via -ldflags.
var Version = "dev"

// EntryStore is the persistence surface the handlers need. Implemented by
// *database.DB; narrowed to an interface so handler tests run without DuckDB.
type EntryStore interface {
	InsertEntry(ctx context.Context, entry *models.WatchedEntry) error
	UpdateEntry(ctx context.Context, entry *models.WatchedEntry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	GetEntry(ctx context.Context, id uuid.UUID) (*models.WatchedEntry, error)
	ListEntries(ctx context.Context, limit, offset int) ([]models.WatchedEntry, error)
	CountEntries(ctx context.Context) (int, error)
	ImportEntries(ctx context.Context, entries []models.WatchedEntry) (*models.ImportResult, error)
	ExportEntries(ctx context.Context) ([]models.WatchedEntry, error)
	Ping(ctx context.Context) error
}

// InsightsProvider computes (or serves cached) insight results.
// Implemented by *insights.Service.
type InsightsProvider interface {
	Load(ctx context.Context, sel insights.Selector, force bool) (*models.InsightsResult, bool, error)
	InvalidateAll()
}

// SettingsStore persists user preferences across restarts.
// Implemented by *settings.Store.
type SettingsStore interface {
	GetLastRange(ctx context.Context) (*settings.SavedRange, error)
	SetLastRange(ctx context.Context, r *settings.SavedRange) error
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor (this file)
//   - handlers_helpers.go: shared helper functions
//   - handlers_entries.go: watched-entry CRUD, import and export
//   - handlers_insights.go: insights and range-selection endpoints
//   - handlers_health.go: health and liveness endpoints
type Handler struct {
	store     EntryStore
	insights  InsightsProvider
	settings  SettingsStore
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler. settings may be nil, in which case
// the last-range endpoints fall back to the all-time default.
func NewHandler(store EntryStore, ins InsightsProvider, st SettingsStore, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		insights:  ins,
		settings:  st,
		config:    cfg,
		startTime: time.Now(),
	}
}

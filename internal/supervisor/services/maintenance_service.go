// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package services

import (
	"context"
	"time"

	"github.com/kmoraz/cinelog/internal/logging"
)

// Checkpointer is the database maintenance surface needed by the service.
//
// Satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// MaintenanceService periodically checkpoints the database so the WAL stays
// small and on-disk state is durable even if the process is killed.
//
// Checkpoint failures are logged and retried on the next tick rather than
// crashing the service; a transient failure should not trigger a supervisor
// restart loop.
type MaintenanceService struct {
	db       Checkpointer
	interval time.Duration
	name     string
}

// NewMaintenanceService creates a maintenance service that checkpoints the
// database every interval. Intervals below one minute are raised to one
// minute to avoid hammering the database.
func NewMaintenanceService(db Checkpointer, interval time.Duration) *MaintenanceService {
	if interval < time.Minute {
		interval = time.Minute
	}
	return &MaintenanceService{
		db:       db,
		interval: interval,
		name:     "db-maintenance",
	}
}

// Serve implements suture.Service. It runs until the context is canceled.
func (m *MaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := m.db.Checkpoint(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn().Err(err).Msg("Periodic database checkpoint failed")
				continue
			}
			logging.Debug().Msg("Periodic database checkpoint completed")
		}
	}
}

// String implements fmt.Stringer for logging.
func (m *MaintenanceService) String() string {
	return m.name
}

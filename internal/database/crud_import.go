// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmoraz/cinelog/internal/logging"
	"github.com/kmoraz/cinelog/internal/metrics"
	"github.com/kmoraz/cinelog/internal/models"
)

// ImportEntries bulk-inserts watched entries inside a single transaction.
// Entries with an empty title are skipped. Entries whose ID already exists
// are skipped via ON CONFLICT DO NOTHING, so re-importing a previous export
// is idempotent. Malformed watched dates are imported as-is; the insights
// engine excludes them at read time.
func (db *DB) ImportEntries(ctx context.Context, entries []models.WatchedEntry) (*models.ImportResult, error) {
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		metrics.RecordDBQuery("import_entries", time.Since(start), err)
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO watched_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("import_entries", time.Since(start), err)
		return nil, fmt.Errorf("failed to prepare import statement: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	result := &models.ImportResult{}
	now := time.Now().UTC()

	for i := range entries {
		entry := &entries[i]
		if entry.Title == "" {
			result.Skipped++
			continue
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
		entry.UpdatedAt = now

		res, err := stmt.ExecContext(ctx,
			entry.ID, entry.Title, entry.Rating, entry.WatchedDate,
			string(entry.Location), entry.Companions,
			entry.SpendCents, entry.DurationMinutes, string(entry.TimeOfDay),
			entry.Genre, entry.Language, entry.CreatedAt, entry.UpdatedAt,
		)
		if err != nil {
			metrics.RecordDBQuery("import_entries", time.Since(start), err)
			return nil, fmt.Errorf("failed to import entry %s: %w", entry.ID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			metrics.RecordDBQuery("import_entries", time.Since(start), err)
			return nil, fmt.Errorf("failed to check import result: %w", err)
		}
		if affected == 0 {
			result.Skipped++
		} else {
			result.Imported++
		}
	}

	if err := tx.Commit(); err != nil {
		metrics.RecordDBQuery("import_entries", time.Since(start), err)
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}
	metrics.RecordDBQuery("import_entries", time.Since(start), nil)

	logging.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Msg("Entries import completed")

	return result, nil
}

// ExportEntries returns the full snapshot for JSON export, ordered by
// watched date ascending so exports diff cleanly between backups.
func (db *DB) ExportEntries(ctx context.Context) ([]models.WatchedEntry, error) {
	return db.AllEntries(ctx)
}

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmoraz/cinelog/internal/metrics"
	"github.com/kmoraz/cinelog/internal/models"
)

const entryColumns = `id, title, rating, watched_date, location, companions,
	spend_cents, duration_minutes, time_of_day, genre, language, created_at, updated_at`

// InsertEntry inserts a new watched entry. A zero ID is assigned a fresh UUID.
// ON CONFLICT DO NOTHING makes re-imports of the same ID idempotent.
func (db *DB) InsertEntry(ctx context.Context, entry *models.WatchedEntry) error {
	start := time.Now()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	query := `INSERT INTO watched_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`

	_, err := db.conn.ExecContext(ctx, query,
		entry.ID, entry.Title, entry.Rating, entry.WatchedDate,
		string(entry.Location), entry.Companions,
		entry.SpendCents, entry.DurationMinutes, string(entry.TimeOfDay),
		entry.Genre, entry.Language, entry.CreatedAt, entry.UpdatedAt,
	)
	metrics.RecordDBQuery("insert_entry", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// UpdateEntry updates an existing watched entry by ID.
// Returns ErrEntryNotFound when no row matches.
func (db *DB) UpdateEntry(ctx context.Context, entry *models.WatchedEntry) error {
	start := time.Now()

	entry.UpdatedAt = time.Now().UTC()

	query := `UPDATE watched_entries SET
		title = ?, rating = ?, watched_date = ?, location = ?, companions = ?,
		spend_cents = ?, duration_minutes = ?, time_of_day = ?, genre = ?,
		language = ?, updated_at = ?
		WHERE id = ?`

	res, err := db.conn.ExecContext(ctx, query,
		entry.Title, entry.Rating, entry.WatchedDate,
		string(entry.Location), entry.Companions,
		entry.SpendCents, entry.DurationMinutes, string(entry.TimeOfDay),
		entry.Genre, entry.Language, entry.UpdatedAt,
		entry.ID,
	)
	metrics.RecordDBQuery("update_entry", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry removes a watched entry by ID.
// Returns ErrEntryNotFound when no row matches.
func (db *DB) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM watched_entries WHERE id = ?`, id)
	metrics.RecordDBQuery("delete_entry", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// GetEntry fetches a single watched entry by ID.
func (db *DB) GetEntry(ctx context.Context, id uuid.UUID) (*models.WatchedEntry, error) {
	start := time.Now()

	query := `SELECT ` + entryColumns + ` FROM watched_entries WHERE id = ?`
	row := db.conn.QueryRowContext(ctx, query, id)

	entry, err := scanEntry(row)
	metrics.RecordDBQuery("get_entry", time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns a page of watched entries ordered by watched date
// descending, newest first. Entries sharing a date are ordered by creation time.
func (db *DB) ListEntries(ctx context.Context, limit, offset int) ([]models.WatchedEntry, error) {
	start := time.Now()

	query := `SELECT ` + entryColumns + ` FROM watched_entries
		ORDER BY watched_date DESC, created_at DESC
		LIMIT ? OFFSET ?`

	rows, err := db.conn.QueryContext(ctx, query, limit, offset)
	if err != nil {
		metrics.RecordDBQuery("list_entries", time.Since(start), err)
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer closeWithLog(rows, "rows")

	entries, err := scanEntries(rows)
	metrics.RecordDBQuery("list_entries", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AllEntries returns the full snapshot of watched entries, ordered by watched
// date ascending. This is the input to the insights engine; the dataset is a
// personal movie log, so loading it whole is cheap.
func (db *DB) AllEntries(ctx context.Context) ([]models.WatchedEntry, error) {
	start := time.Now()

	query := `SELECT ` + entryColumns + ` FROM watched_entries
		ORDER BY watched_date ASC, created_at ASC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("all_entries", time.Since(start), err)
		return nil, fmt.Errorf("failed to load entries snapshot: %w", err)
	}
	defer closeWithLog(rows, "rows")

	entries, err := scanEntries(rows)
	metrics.RecordDBQuery("all_entries", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CountEntries returns the total number of watched entries.
func (db *DB) CountEntries(ctx context.Context) (int, error) {
	start := time.Now()

	var count int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM watched_entries`).Scan(&count)
	metrics.RecordDBQuery("count_entries", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*models.WatchedEntry, error) {
	var (
		entry     models.WatchedEntry
		location  string
		timeOfDay string
	)
	err := row.Scan(
		&entry.ID, &entry.Title, &entry.Rating, &entry.WatchedDate,
		&location, &entry.Companions,
		&entry.SpendCents, &entry.DurationMinutes, &timeOfDay,
		&entry.Genre, &entry.Language, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Location = models.Location(location)
	entry.TimeOfDay = models.TimeOfDay(timeOfDay)
	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]models.WatchedEntry, error) {
	entries := make([]models.WatchedEntry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package database

import (
	"context"
	"fmt"
	"time"
)

// createTables creates the core schema.
//
// watched_date is stored as the raw "YYYY-MM-DD" string the user entered,
// not a DATE column. Malformed values are kept in storage and excluded
// from analytics at read time, so a bad import never loses data.
func (db *DB) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := `CREATE TABLE IF NOT EXISTS watched_entries (
		id UUID PRIMARY KEY,
		title VARCHAR NOT NULL,
		rating INTEGER,
		watched_date VARCHAR NOT NULL,
		location VARCHAR NOT NULL DEFAULT 'other',
		companions VARCHAR NOT NULL DEFAULT '',
		spend_cents INTEGER,
		duration_minutes INTEGER,
		time_of_day VARCHAR NOT NULL DEFAULT '',
		genre VARCHAR NOT NULL DEFAULT '',
		language VARCHAR NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create watched_entries table: %w", err)
	}

	return nil
}

// createIndexes creates secondary indexes for common query patterns.
func (db *DB) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_watched_entries_date ON watched_entries(watched_date)`,
		`CREATE INDEX IF NOT EXISTS idx_watched_entries_title ON watched_entries(title)`,
	}

	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

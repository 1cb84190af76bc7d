// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package settings provides a small BadgerDB-backed store for user
// preferences that must survive restarts, such as the last-selected
// insights date range.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage
const (
	lastRangeKey = "settings:last_range"
)

// ErrNotFound is returned when a setting has never been written.
var ErrNotFound = errors.New("setting not found")

// SavedRange is the persisted form of the user's last-selected insights range.
// For named ranges only Kind is set; custom ranges also carry unix bounds.
type SavedRange struct {
	Kind      string `json:"kind"`
	StartUnix int64  `json:"start_unix,omitempty"`
	EndUnix   int64  `json:"end_unix,omitempty"`
}

// Store persists settings in BadgerDB.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a settings store at the given path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for settings: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an in-memory settings store for testing.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// GetLastRange returns the last-selected insights range, or ErrNotFound
// if the user has never changed the range.
func (s *Store) GetLastRange(ctx context.Context) (*SavedRange, error) {
	var saved SavedRange

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(lastRangeKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get last range: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &saved)
		})
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// SetLastRange persists the last-selected insights range.
func (s *Store) SetLastRange(ctx context.Context, r *SavedRange) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal last range: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(lastRangeKey), data)
	})
}

// Close closes the underlying BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}

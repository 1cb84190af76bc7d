// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package settings

import (
	"context"
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestGetLastRangeNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetLastRange(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetLastRange() error = %v, want ErrNotFound", err)
	}
}

func TestSetAndGetLastRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetLastRange(ctx, &SavedRange{Kind: "this_month"}); err != nil {
		t.Fatalf("SetLastRange() error = %v", err)
	}

	got, err := store.GetLastRange(ctx)
	if err != nil {
		t.Fatalf("GetLastRange() error = %v", err)
	}
	if got.Kind != "this_month" {
		t.Errorf("Kind = %q, want this_month", got.Kind)
	}
	if got.StartUnix != 0 || got.EndUnix != 0 {
		t.Errorf("bounds = (%d, %d), want zero for named range", got.StartUnix, got.EndUnix)
	}
}

func TestSetLastRangeOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetLastRange(ctx, &SavedRange{Kind: "this_year"}); err != nil {
		t.Fatalf("SetLastRange() error = %v", err)
	}
	custom := &SavedRange{Kind: "custom", StartUnix: 1767225600, EndUnix: 1769904000}
	if err := store.SetLastRange(ctx, custom); err != nil {
		t.Fatalf("SetLastRange() overwrite error = %v", err)
	}

	got, err := store.GetLastRange(ctx)
	if err != nil {
		t.Fatalf("GetLastRange() error = %v", err)
	}
	if got.Kind != "custom" {
		t.Errorf("Kind = %q, want custom", got.Kind)
	}
	if got.StartUnix != custom.StartUnix || got.EndUnix != custom.EndUnix {
		t.Errorf("bounds = (%d, %d), want (%d, %d)",
			got.StartUnix, got.EndUnix, custom.StartUnix, custom.EndUnix)
	}
}

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kmoraz/cinelog/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func intPtr(v int) *int { return &v }

func sampleEntry(title, date string) *models.WatchedEntry {
	return &models.WatchedEntry{
		Title:           title,
		Rating:          intPtr(8),
		WatchedDate:     date,
		Location:        models.LocationTheater,
		Companions:      "Alice, Bob",
		SpendCents:      intPtr(1500),
		DurationMinutes: intPtr(120),
		TimeOfDay:       models.TimeEvening,
		Genre:           "Drama",
		Language:        "English",
	}
}

func TestInsertAndGetEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entry := sampleEntry("The Long Goodbye", "2026-03-14")
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Fatal("InsertEntry() did not assign an ID")
	}

	got, err := db.GetEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got.Title != "The Long Goodbye" {
		t.Errorf("Title = %q, want The Long Goodbye", got.Title)
	}
	if got.WatchedDate != "2026-03-14" {
		t.Errorf("WatchedDate = %q, want 2026-03-14", got.WatchedDate)
	}
	if got.Location != models.LocationTheater {
		t.Errorf("Location = %q, want theater", got.Location)
	}
	if got.Rating == nil || *got.Rating != 8 {
		t.Errorf("Rating = %v, want 8", got.Rating)
	}
	if got.SpendCents == nil || *got.SpendCents != 1500 {
		t.Errorf("SpendCents = %v, want 1500", got.SpendCents)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetEntry(context.Background(), uuid.New())
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry() error = %v, want ErrEntryNotFound", err)
	}
}

func TestInsertEntryIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entry := sampleEntry("Stalker", "2026-01-02")
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	// Re-insert with the same ID must not error or duplicate
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() re-insert error = %v", err)
	}

	count, err := db.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountEntries() = %d, want 1", count)
	}
}

func TestUpdateEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entry := sampleEntry("Ran", "2026-02-10")
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	entry.Rating = intPtr(10)
	entry.Location = models.LocationHome
	entry.SpendCents = nil
	if err := db.UpdateEntry(ctx, entry); err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}

	got, err := db.GetEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got.Rating == nil || *got.Rating != 10 {
		t.Errorf("Rating = %v, want 10", got.Rating)
	}
	if got.Location != models.LocationHome {
		t.Errorf("Location = %q, want home", got.Location)
	}
	if got.SpendCents != nil {
		t.Errorf("SpendCents = %v, want nil", got.SpendCents)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	db := newTestDB(t)

	entry := sampleEntry("Ghost", "2026-02-10")
	entry.ID = uuid.New()
	err := db.UpdateEntry(context.Background(), entry)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("UpdateEntry() error = %v, want ErrEntryNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entry := sampleEntry("Heat", "2026-04-01")
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	if err := db.DeleteEntry(ctx, entry.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if _, err := db.GetEntry(ctx, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntry() after delete error = %v, want ErrEntryNotFound", err)
	}
	if err := db.DeleteEntry(ctx, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("DeleteEntry() second call error = %v, want ErrEntryNotFound", err)
	}
}

func TestListEntriesOrderAndPaging(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	dates := []string{"2026-01-05", "2026-03-20", "2026-02-11"}
	for i, d := range dates {
		e := sampleEntry("Movie", d)
		e.Title = "Movie " + d
		if err := db.InsertEntry(ctx, e); err != nil {
			t.Fatalf("InsertEntry(%d) error = %v", i, err)
		}
	}

	page, err := db.ListEntries(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListEntries() error = %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	// Newest watched date first
	if page[0].WatchedDate != "2026-03-20" {
		t.Errorf("page[0].WatchedDate = %q, want 2026-03-20", page[0].WatchedDate)
	}
	if page[1].WatchedDate != "2026-02-11" {
		t.Errorf("page[1].WatchedDate = %q, want 2026-02-11", page[1].WatchedDate)
	}

	rest, err := db.ListEntries(ctx, 2, 2)
	if err != nil {
		t.Fatalf("ListEntries() offset error = %v", err)
	}
	if len(rest) != 1 || rest[0].WatchedDate != "2026-01-05" {
		t.Errorf("offset page = %v, want single 2026-01-05 entry", rest)
	}
}

func TestAllEntriesAscending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, d := range []string{"2026-05-01", "2026-01-01", "2026-03-01"} {
		if err := db.InsertEntry(ctx, sampleEntry("M", d)); err != nil {
			t.Fatalf("InsertEntry() error = %v", err)
		}
	}

	all, err := db.AllEntries(ctx)
	if err != nil {
		t.Fatalf("AllEntries() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	want := []string{"2026-01-01", "2026-03-01", "2026-05-01"}
	for i, w := range want {
		if all[i].WatchedDate != w {
			t.Errorf("all[%d].WatchedDate = %q, want %q", i, all[i].WatchedDate, w)
		}
	}
}

func TestMalformedDatePreserved(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	entry := sampleEntry("Bad Date", "not-a-date")
	if err := db.InsertEntry(ctx, entry); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	got, err := db.GetEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry() error = %v", err)
	}
	if got.WatchedDate != "not-a-date" {
		t.Errorf("WatchedDate = %q, want raw value preserved", got.WatchedDate)
	}
	if _, ok := got.Date(); ok {
		t.Error("Date() ok = true for malformed date, want false")
	}
}

func TestImportEntries(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	existing := sampleEntry("Already Here", "2026-01-01")
	if err := db.InsertEntry(ctx, existing); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	batch := []models.WatchedEntry{
		*sampleEntry("New One", "2026-02-01"),
		*existing, // duplicate ID, must be skipped
		{WatchedDate: "2026-03-01"}, // empty title, must be skipped
	}

	result, err := db.ImportEntries(ctx, batch)
	if err != nil {
		t.Fatalf("ImportEntries() error = %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}

	count, err := db.CountEntries(ctx)
	if err != nil {
		t.Fatalf("CountEntries() error = %v", err)
	}
	if count != 2 {
		t.Errorf("CountEntries() = %d, want 2", count)
	}
}

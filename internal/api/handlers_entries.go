// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/kmoraz/cinelog/internal/database"
	"github.com/kmoraz/cinelog/internal/logging"
	"github.com/kmoraz/cinelog/internal/models"
)

// entryPayload is the request body for creating and updating watched entries.
type entryPayload struct {
	Title           string `json:"title" validate:"required,max=500"`
	Rating          *int   `json:"rating" validate:"omitempty,min=0,max=10"`
	WatchedDate     string `json:"watched_date" validate:"required,watcheddate"`
	Location        string `json:"location" validate:"omitempty,oneof=home theater friends_home other"`
	Companions      string `json:"companions" validate:"omitempty,max=1000"`
	SpendCents      *int   `json:"spend_cents" validate:"omitempty,min=0"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	TimeOfDay       string `json:"time_of_day" validate:"omitempty,oneof=morning afternoon evening night"`
	Genre           string `json:"genre" validate:"omitempty,max=100"`
	Language        string `json:"language" validate:"omitempty,max=100"`
}

// toModel applies the payload onto a watched entry.
func (p *entryPayload) toModel(entry *models.WatchedEntry) {
	entry.Title = p.Title
	entry.Rating = p.Rating
	entry.WatchedDate = p.WatchedDate
	entry.Location = models.Location(p.Location)
	if p.Location == "" {
		entry.Location = models.LocationOther
	}
	entry.Companions = p.Companions
	entry.SpendCents = p.SpendCents
	entry.DurationMinutes = p.DurationMinutes
	entry.TimeOfDay = models.TimeOfDay(p.TimeOfDay)
	entry.Genre = p.Genre
	entry.Language = p.Language
}

// decodeEntryPayload parses and validates an entry request body.
// Returns nil after writing an error response when the body is invalid.
func decodeEntryPayload(w http.ResponseWriter, r *http.Request) *entryPayload {
	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", err)
		return nil
	}
	if apiErr := validateRequest(&payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return nil
	}
	return &payload
}

// entryIDParam parses the {id} URL parameter.
// Returns uuid.Nil after writing an error response when malformed.
func entryIDParam(w http.ResponseWriter, r *http.Request) uuid.UUID {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Entry ID must be a valid UUID", nil)
		return uuid.Nil
	}
	return id
}

// CreateEntry handles POST /api/v1/entries.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	payload := decodeEntryPayload(w, r)
	if payload == nil {
		return
	}

	entry := &models.WatchedEntry{}
	payload.toModel(entry)

	if err := h.store.InsertEntry(r.Context(), entry); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create entry", err)
		return
	}

	h.insights.InvalidateAll()

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data:   entry,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// UpdateEntry handles PUT /api/v1/entries/{id}.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := entryIDParam(w, r)
	if id == uuid.Nil {
		return
	}
	payload := decodeEntryPayload(w, r)
	if payload == nil {
		return
	}

	entry, err := h.store.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load entry", err)
		return
	}

	payload.toModel(entry)

	if err := h.store.UpdateEntry(r.Context(), entry); err != nil {
		if errors.Is(err, database.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update entry", err)
		return
	}

	h.insights.InvalidateAll()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   entry,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// DeleteEntry handles DELETE /api/v1/entries/{id}.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := entryIDParam(w, r)
	if id == uuid.Nil {
		return
	}

	if err := h.store.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, database.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete entry", err)
		return
	}

	h.insights.InvalidateAll()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"deleted": id.String()},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// GetEntry handles GET /api/v1/entries/{id}.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := entryIDParam(w, r)
	if id == uuid.Nil {
		return
	}

	entry, err := h.store.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrEntryNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Entry not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load entry", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   entry,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ListEntries handles GET /api/v1/entries with limit/offset pagination.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := h.clampPageSize(getIntParam(r, "limit", h.config.API.DefaultPageSize))
	offset := getIntParam(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	entries, err := h.store.ListEntries(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list entries", err)
		return
	}

	total, err := h.store.CountEntries(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count entries", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.EntriesPage{
			Entries: entries,
			Total:   total,
			Limit:   limit,
			Offset:  offset,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ImportEntries handles POST /api/v1/entries/import with a JSON array body,
// typically a previous export. Duplicate IDs and empty titles are skipped.
func (h *Handler) ImportEntries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var entries []models.WatchedEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not a valid JSON array of entries", err)
		return
	}

	result, err := h.store.ImportEntries(r.Context(), entries)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to import entries", err)
		return
	}

	if result.Imported > 0 {
		h.insights.InvalidateAll()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// ExportEntries handles GET /api/v1/entries/export, returning the full log
// as a JSON array suitable for re-import.
func (h *Handler) ExportEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ExportEntries(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to export entries", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="cinelog-export.json"`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		logging.Error().Err(err).Msg("Failed to write export response")
	}
}

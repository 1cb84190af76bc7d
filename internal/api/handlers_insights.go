// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/kmoraz/cinelog/internal/insights"
	"github.com/kmoraz/cinelog/internal/models"
	"github.com/kmoraz/cinelog/internal/settings"
)

// Insights handles GET /api/v1/insights.
//
// Query parameters:
//   - range: this_month | last_3_months | this_year | all_time | custom
//     (unknown values resolve as all_time)
//   - start, end: YYYY-MM-DD bounds, required when range=custom
//   - force: recompute even when a cached result exists
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sel, ok := h.parseSelector(w, r)
	if !ok {
		return
	}
	force := getBoolParam(r, "force")

	result, cached, err := h.insights.Load(r.Context(), sel, force)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INSIGHTS_ERROR", "Failed to compute insights", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
		},
	})
}

// parseSelector builds an insights.Selector from query parameters.
// Writes a 400 response and returns false when a custom bound is malformed.
func (h *Handler) parseSelector(w http.ResponseWriter, r *http.Request) (insights.Selector, bool) {
	kind := insights.ParseRangeKind(r.URL.Query().Get("range"))
	sel := insights.Selector{Kind: kind}

	if kind != insights.RangeCustom {
		return sel, true
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	startDate, err := time.ParseInLocation(models.WatchedDateLayout, startStr, time.Local)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_RANGE", "start must be a YYYY-MM-DD date for custom ranges", nil)
		return sel, false
	}
	endDate, err := time.ParseInLocation(models.WatchedDateLayout, endStr, time.Local)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_RANGE", "end must be a YYYY-MM-DD date for custom ranges", nil)
		return sel, false
	}

	sel.Start = startDate
	// The end date is inclusive: extend to the last instant of that day.
	sel.End = endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return sel, true
}

// rangePayload is the request/response body for the last-range endpoints.
type rangePayload struct {
	Kind  string `json:"kind" validate:"required,oneof=this_month last_3_months this_year all_time custom"`
	Start string `json:"start,omitempty" validate:"omitempty,watcheddate"`
	End   string `json:"end,omitempty" validate:"omitempty,watcheddate"`
}

// GetLastRange handles GET /api/v1/insights/last-range. When no range has
// ever been saved it returns the all-time default rather than an error.
func (h *Handler) GetLastRange(w http.ResponseWriter, r *http.Request) {
	payload := rangePayload{Kind: string(insights.RangeAllTime)}

	if h.settings != nil {
		saved, err := h.settings.GetLastRange(r.Context())
		switch {
		case err == nil:
			payload.Kind = saved.Kind
			if saved.StartUnix != 0 {
				payload.Start = time.Unix(saved.StartUnix, 0).Format(models.WatchedDateLayout)
			}
			if saved.EndUnix != 0 {
				payload.End = time.Unix(saved.EndUnix, 0).Format(models.WatchedDateLayout)
			}
		case errors.Is(err, settings.ErrNotFound):
			// First run, keep the default
		default:
			respondError(w, http.StatusInternalServerError, "SETTINGS_ERROR", "Failed to load last range", err)
			return
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     payload,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// PutLastRange handles PUT /api/v1/insights/last-range, persisting the
// user's selection so it survives restarts.
func (h *Handler) PutLastRange(w http.ResponseWriter, r *http.Request) {
	var payload rangePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", err)
		return
	}
	if apiErr := validateRequest(&payload); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	saved := &settings.SavedRange{Kind: payload.Kind}
	if payload.Kind == string(insights.RangeCustom) {
		if payload.Start == "" || payload.End == "" {
			respondError(w, http.StatusBadRequest, "INVALID_RANGE", "custom ranges require start and end dates", nil)
			return
		}
		startDate, _ := time.ParseInLocation(models.WatchedDateLayout, payload.Start, time.Local)
		endDate, _ := time.ParseInLocation(models.WatchedDateLayout, payload.End, time.Local)
		saved.StartUnix = startDate.Unix()
		saved.EndUnix = endDate.Unix()
	}

	if h.settings == nil {
		respondError(w, http.StatusServiceUnavailable, "SETTINGS_ERROR", "Settings store not available", nil)
		return
	}
	if err := h.settings.SetLastRange(r.Context(), saved); err != nil {
		respondError(w, http.StatusInternalServerError, "SETTINGS_ERROR", "Failed to save last range", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     payload,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

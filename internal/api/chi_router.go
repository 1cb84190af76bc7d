// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmoraz/cinelog/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing table.
type Router struct {
	handler *Handler
	chiMW   *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware factory.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMW: chiMW}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware stack, applied to all routes in order: request ID,
	// real IP extraction, panic recovery, then CORS (global so OPTIONS
	// preflight is always answered).
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMW.CORS())

	// Health endpoints get permissive rate limiting for monitoring probes
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMW.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Core API endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMW.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", router.handler.ListEntries)
			r.Post("/", router.handler.CreateEntry)
			r.Get("/export", router.handler.ExportEntries)
			r.Post("/import", router.handler.ImportEntries)
			r.Get("/{id}", router.handler.GetEntry)
			r.Put("/{id}", router.handler.UpdateEntry)
			r.Delete("/{id}", router.handler.DeleteEntry)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/", router.handler.Insights)
			r.Get("/last-range", router.handler.GetLastRange)
			r.Put("/last-range", router.handler.PutLastRange)
		})
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

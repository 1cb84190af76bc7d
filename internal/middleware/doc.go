// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking that flows into structured logs
  - Prometheus Metrics: HTTP request/response instrumentation

Both components are chi-compatible (func(http.Handler) http.Handler) and sit
alongside the stock chi middleware (RealIP, Recoverer), the CORS layer, and
httprate rate limiting wired in the API router.

Usage Example - Request ID:

	r.Use(middleware.RequestID)

	// Access request ID in a handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("processing request")
	}

Thread Safety:

All middleware components are thread-safe. Request ID uses immutable
context values; metrics use Prometheus client atomics.
*/
package middleware

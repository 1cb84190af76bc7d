// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

/*
Package api implements the HTTP layer: Chi routing, middleware wiring, and
the handlers for watched-entry CRUD, import/export, insights, and health.

All responses use the models.APIResponse envelope with status, data, and
metadata (timestamp, query time, cache hit flag). Errors carry a stable
machine-readable code alongside a human-readable message.

Handlers depend on small interfaces (EntryStore, InsightsProvider,
SettingsStore) rather than concrete types, so tests exercise the full
HTTP path with in-memory fakes and no DuckDB file.
*/
package api

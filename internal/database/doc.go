// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

/*
Package database provides DuckDB-backed persistence for watched entries.

The schema is a single watched_entries table. Watched dates are stored as
raw YYYY-MM-DD strings rather than DATE columns: imported records may carry
malformed dates and the storage layer preserves them, leaving exclusion to
the insights engine.

All operations take a context and are instrumented with Prometheus
query-duration and error metrics. The DB handle is safe for concurrent use.
*/
package database

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package insights computes windowed statistics, period-over-period
// comparisons, behavioral distributions, weekly-activity streaks, and ranked
// narrative observations from a snapshot of watched-entry records.
//
// The computation pipeline is pure and synchronous: Resolve maps a range
// selector to a concrete interval, Aggregate filters and aggregates the
// snapshot, Streaks runs over all-time history, and SelectHero plus Narrate
// derive the headline and narrative insights from the aggregated metrics.
// Compute ties the stages together and returns a single immutable
// InsightsResult.
//
// The engine performs no I/O and never mutates its inputs. Malformed or
// missing optional fields degrade to documented zero/empty defaults rather
// than errors; the only input-level defect, an unparsable watched date, is
// silently excluded from date-scoped aggregates.
//
// Service wraps the pipeline with a repository and a keyed memo cache for
// cache-aware loading and explicit invalidation.
package insights

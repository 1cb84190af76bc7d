// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package services contains suture.Service wrappers for Cinelog's
// long-running components.
//
// Each wrapper adapts a blocking component (an HTTP server, a periodic
// maintenance loop) to suture's context-aware Serve contract so it can be
// placed under the supervisor tree in the parent package. Wrappers depend
// on small local interfaces rather than concrete types, which keeps them
// testable with in-memory mocks.
package services

// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

// Package supervisor provides Suture-based process supervision for Cinelog.
//
// The supervisor tree has a root supervisor with two child layers:
//
//	cinelog (root)
//	├── data-layer   periodic database maintenance
//	└── api-layer    HTTP server
//
// Each layer is a suture.Supervisor of its own, so a crashing service is
// restarted within its layer without disturbing the other layer. Supervisor
// events are logged through sutureslog, which bridges suture's event hook
// to the application's slog handler.
//
// Services live in the services subpackage; each wraps a blocking component
// behind suture's context-aware Serve method.
package supervisor

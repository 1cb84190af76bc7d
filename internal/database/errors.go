// Cinelog - Personal Movie Log and Insights Engine
// Copyright 2026 K. Moraz (kmoraz)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kmoraz/cinelog

package database

import "errors"

// ErrEntryNotFound is returned when a watched entry lookup by ID finds no row.
var ErrEntryNotFound = errors.New("watched entry not found")

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides browsing and filtering over saved queries.
//
// Entries come from the server's saved-query list. Filtering is pure:
// a Filter value is applied to a slice of entries and returns the
// matching subset, so the UI can re-run it on every keystroke.
package history

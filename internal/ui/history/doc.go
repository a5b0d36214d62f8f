// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history implements the saved-query browsing view: a filter
// bar (free-text search, document, date range) over the server's query
// history, rendered as a scrolling list.
package history

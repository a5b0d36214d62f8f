// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared across the regguru
// client: chat messages, date-grouped message views, saved queries and
// the uploaded-document display cache.
package model

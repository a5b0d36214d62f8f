// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the client-side persistence port and its
// adapters. Session message logs are stored as opaque byte values under
// string keys, so the chat core never knows whether it is talking to a
// directory of JSON files, a SQLite database, or an in-memory fake.
package storage

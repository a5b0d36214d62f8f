// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the remote Reg-Guru server.
//
// The server exposes a small JSON API for document Q&A: ask a question
// about the uploaded corpus, save answered questions, list history,
// upload documents, and record answer feedback. This package wraps
// those endpoints behind typed methods with consistent error mapping.
//
// # Key Types
//
//   - Client: HTTP client for all Reg-Guru endpoints
//   - ClientError: Typed error with an ErrorType category
//   - SavedQueryRecord, DocumentRecord: History payloads
//
// # Usage
//
//	client := api.NewClient("http://127.0.0.1:5000")
//	answer, err := client.Chat(ctx, "What is the retention period?")
//	if errors.Is(err, api.ErrTimeout) {
//	    // surface a retry hint to the user
//	}
package api

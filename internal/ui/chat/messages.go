// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface: chat round-trips, upload outcomes, history loads, and
// connectivity checks.
package chat

import (
	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// ChatResultMsg delivers the server's answer (or failure) for one send.
// SessionKey and Seq tie the result to the send that produced it: the
// update loop drops results from a cleared session, and the session
// manager holds out-of-order results until earlier sends resolve.
type ChatResultMsg struct {
	SessionKey string
	Seq        uint64
	Question   string
	Answer     string
	Err        error
}

// QuerySavedMsg reports the outcome of persisting a completed exchange
// to the server's history.
type QuerySavedMsg struct {
	Err error
}

// =============================================================================
// UPLOAD MESSAGES
// =============================================================================

// UploadResultMsg delivers the outcome of a document upload.
type UploadResultMsg struct {
	Outcome upload.Outcome
}

// =============================================================================
// DOCUMENT MESSAGES
// =============================================================================

// DocumentsLoadedMsg delivers the server's document inventory.
type DocumentsLoadedMsg struct {
	Documents []model.UploadedDocument
	Err       error
}

// =============================================================================
// CONNECTIVITY MESSAGES
// =============================================================================

// PingResultMsg reports whether the server answered the health check.
type PingResultMsg struct {
	Connected bool
	Err       error
}

// FeedbackLoggedMsg reports the outcome of a thumbs up/down submission.
type FeedbackLoggedMsg struct {
	Rating string
	Err    error
}

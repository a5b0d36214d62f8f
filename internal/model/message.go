// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Reg-Guru"
	default:
		return string(r)
	}
}

// Valid reports whether the role is one of the known senders.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in a chat session's message log.
// Messages are immutable once created; the log is append-only.
type Message struct {
	// ID is derived from the creation time in milliseconds. IDs are
	// unique and monotonically non-decreasing within one session.
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message stamped at the given time. lastID is the
// ID of the most recent message in the session; when the millisecond
// clock has not advanced (or moved backwards), the new ID is bumped past
// it so ordering by ID always matches insertion order.
func NewMessage(role Role, text string, at time.Time, lastID int64) Message {
	id := at.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	return Message{
		ID:        id,
		Text:      text,
		Role:      role,
		Timestamp: at,
	}
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no text.
func (m Message) IsEmpty() bool {
	return len(m.Text) == 0
}

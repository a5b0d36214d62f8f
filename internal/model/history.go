// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// SAVED QUERIES
// =============================================================================

// SavedQuery is one question/answer pair recorded by the backend.
// The list is fetched wholesale after each turn and never mutated locally.
type SavedQuery struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Document  string    `json:"document"`
	Timestamp time.Time `json:"timestamp"`
}

// =============================================================================
// UPLOADED DOCUMENTS
// =============================================================================

// UploadedDocument is a display-cache entry for a document the user
// uploaded this session. The backend owns the durable record; this type
// only feeds the "recent documents" UI.
type UploadedDocument struct {
	Filename   string    `json:"filename"`
	UploadTime time.Time `json:"upload_time"`
}

// ParseAPITimestamp parses the timestamp strings the backend emits.
// The backend writes naive ISO-8601 (no zone, optional fractional
// seconds); RFC 3339 is accepted too. A zero time is returned for
// anything unparsable - history rendering degrades, it never fails.
func ParseAPITimestamp(s string) time.Time {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_IDFromTimestamp(t *testing.T) {
	at := time.Date(2025, 4, 4, 14, 32, 0, 0, time.UTC)
	msg := NewMessage(RoleUser, "hello", at, 0)

	if msg.ID != at.UnixMilli() {
		t.Errorf("ID = %d, want %d", msg.ID, at.UnixMilli())
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %q, want user", msg.Role)
	}
	if msg.Text != "hello" {
		t.Errorf("Text = %q", msg.Text)
	}
}

func TestNewMessage_MonotonicIDs(t *testing.T) {
	at := time.Date(2025, 4, 4, 14, 32, 0, 0, time.UTC)

	first := NewMessage(RoleUser, "a", at, 0)
	// Same millisecond: ID must still advance.
	second := NewMessage(RoleBot, "b", at, first.ID)
	// Clock moved backwards: ID must not regress.
	third := NewMessage(RoleUser, "c", at.Add(-time.Second), second.ID)

	if second.ID <= first.ID {
		t.Errorf("second.ID = %d, not greater than first.ID = %d", second.ID, first.ID)
	}
	if third.ID <= second.ID {
		t.Errorf("third.ID = %d, not greater than second.ID = %d", third.ID, second.ID)
	}
}

func TestMessage_Preview(t *testing.T) {
	at := time.Now()
	msg := NewMessage(RoleUser, "What is the deadline for Q2 filings?", at, 0)

	if got := msg.Preview(100); got != msg.Text {
		t.Errorf("Preview(100) = %q, want full text", got)
	}
	if got := msg.Preview(10); got != "What is..." {
		t.Errorf("Preview(10) = %q", got)
	}
}

func TestRole_DisplayName(t *testing.T) {
	if got := RoleUser.DisplayName(); got != "You" {
		t.Errorf("user display = %q", got)
	}
	if got := RoleBot.DisplayName(); got != "Reg-Guru" {
		t.Errorf("bot display = %q", got)
	}
	if !RoleUser.Valid() || !RoleBot.Valid() {
		t.Error("known roles should be valid")
	}
	if Role("system").Valid() {
		t.Error("unknown role should be invalid")
	}
}

// =============================================================================
// DATE GROUPING TESTS
// =============================================================================

func messagesOn(days ...time.Time) []Message {
	var msgs []Message
	var lastID int64
	for i, d := range days {
		role := RoleUser
		if i%2 == 1 {
			role = RoleBot
		}
		m := NewMessage(role, "msg", d, lastID)
		lastID = m.ID
		msgs = append(msgs, m)
	}
	return msgs
}

func TestGroupMessagesByDate(t *testing.T) {
	apr2 := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	apr4 := time.Date(2025, 4, 4, 14, 0, 0, 0, time.UTC)

	msgs := messagesOn(apr2, apr2.Add(time.Minute), apr4, apr4.Add(time.Hour))
	groups := GroupMessagesByDate(msgs)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if !groups[0].Date.Equal(time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first group date = %v", groups[0].Date)
	}
	if len(groups[0].Messages) != 2 || len(groups[1].Messages) != 2 {
		t.Errorf("group sizes = %d, %d", len(groups[0].Messages), len(groups[1].Messages))
	}
}

func TestGroupMessagesByDate_FirstSeenOrder(t *testing.T) {
	apr4 := time.Date(2025, 4, 4, 8, 0, 0, 0, time.UTC)
	apr2 := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

	// A restored log can contain days out of calendar order; grouping
	// preserves first-seen ordering, it does not sort.
	msgs := messagesOn(apr4, apr2)
	groups := GroupMessagesByDate(msgs)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Date.Day() != 4 || groups[1].Date.Day() != 2 {
		t.Errorf("group order = %v, %v", groups[0].Date, groups[1].Date)
	}
}

func TestGroupMessagesByDate_Idempotent(t *testing.T) {
	apr2 := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	apr4 := time.Date(2025, 4, 4, 14, 0, 0, 0, time.UTC)
	msgs := messagesOn(apr2, apr4, apr4.Add(time.Minute))

	once := GroupMessagesByDate(msgs)
	twice := GroupMessagesByDate(FlattenGroups(once))

	if len(once) != len(twice) {
		t.Fatalf("group counts differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Date.Equal(twice[i].Date) {
			t.Errorf("group %d date differs", i)
		}
		if len(once[i].Messages) != len(twice[i].Messages) {
			t.Errorf("group %d size differs", i)
		}
		for j := range once[i].Messages {
			if once[i].Messages[j].ID != twice[i].Messages[j].ID {
				t.Errorf("group %d message %d differs", i, j)
			}
		}
	}
}

func TestGroupMessagesByDate_Empty(t *testing.T) {
	if groups := GroupMessagesByDate(nil); len(groups) != 0 {
		t.Errorf("got %d groups for empty log", len(groups))
	}
}

// =============================================================================
// TIMESTAMP PARSING TESTS
// =============================================================================

func TestParseAPITimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{"naive isoformat", "2025-04-04T14:32:01.123456", false},
		{"naive no fraction", "2025-04-04T14:32:01", false},
		{"rfc3339", "2025-04-04T14:32:01Z", false},
		{"rfc3339 offset", "2025-04-04T14:32:01+08:00", false},
		{"garbage", "not a time", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAPITimestamp(tc.input)
			if got.IsZero() != tc.zero {
				t.Errorf("ParseAPITimestamp(%q).IsZero() = %v, want %v", tc.input, got.IsZero(), tc.zero)
			}
		})
	}
}

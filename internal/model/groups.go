// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// DATE GROUPING
// =============================================================================

// DateGroup is a derived, non-owning view of a message log: all messages
// that fall on one calendar day, in log order. Groups are never stored;
// they are recomputed whenever the log changes.
type DateGroup struct {
	Date     time.Time
	Messages []Message
}

// GroupMessagesByDate groups messages by the calendar day of their
// timestamp, preserving the first-seen ordering of days and the log
// ordering of messages within each day. The function is pure: it never
// modifies its input and grouping an already-grouped (flattened) log
// yields the same groups.
func GroupMessagesByDate(messages []Message) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)

	for _, msg := range messages {
		year, month, day := msg.Timestamp.Date()
		date := time.Date(year, month, day, 0, 0, 0, 0, msg.Timestamp.Location())
		key := date.Format("2006-01-02")

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: date})
		}
		groups[i].Messages = append(groups[i].Messages, msg)
	}

	return groups
}

// FlattenGroups concatenates grouped messages back into a single log,
// in group order. Inverse of GroupMessagesByDate for well-ordered logs.
func FlattenGroups(groups []DateGroup) []Message {
	var messages []Message
	for _, g := range groups {
		messages = append(messages, g.Messages...)
	}
	return messages
}

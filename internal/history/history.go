// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"strings"
	"time"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/model"
)

// DisplayDateFormat is the calendar-day format entries are bucketed
// and filtered by.
const DisplayDateFormat = "Jan 2, 2006"

// =============================================================================
// ENTRIES
// =============================================================================

// Entry is one saved query in the browsing view.
type Entry struct {
	Question  string
	Answer    string
	Document  string
	Timestamp time.Time

	// Date is Timestamp rendered in DisplayDateFormat. Entries with an
	// unparseable timestamp have an empty Date and never match the
	// today/week ranges.
	Date string
}

// EntriesFromQueries converts server records into display entries.
func EntriesFromQueries(records []api.SavedQueryRecord) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		entry := Entry{
			Question: rec.Question,
			Answer:   rec.Answer,
			Document: rec.Document,
		}
		if ts := model.ParseAPITimestamp(rec.Timestamp); !ts.IsZero() {
			entry.Timestamp = ts
			entry.Date = ts.Format(DisplayDateFormat)
		}
		entries = append(entries, entry)
	}
	return entries
}

// =============================================================================
// FILTERING
// =============================================================================

// DateRange selects the time window for filtering.
type DateRange string

const (
	// RangeAll matches every entry.
	RangeAll DateRange = "all"
	// RangeToday matches entries dated today.
	RangeToday DateRange = "today"
	// RangeWeek matches entries from the last seven days.
	RangeWeek DateRange = "week"
)

// Filter is a pure predicate over entries. The zero value matches
// everything; use NewFilter to seed the date ranges from a reference
// time.
type Filter struct {
	// Query is matched case-insensitively against question and answer.
	Query string

	// Documents restricts results to entries for any of the named
	// documents. Empty means no document restriction.
	Documents []string

	// Range selects the time window.
	Range DateRange

	// today is the reference date in DisplayDateFormat.
	today string

	// weekDates holds the reference date and the six days before it,
	// each in DisplayDateFormat. Membership is by date-string equality.
	weekDates []string
}

// NewFilter creates a filter with date ranges anchored at now. Pass the
// wall clock in production; tests pass a fixed time.
func NewFilter(now time.Time) Filter {
	week := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, now.AddDate(0, 0, -i).Format(DisplayDateFormat))
	}
	return Filter{
		Range:     RangeAll,
		today:     now.Format(DisplayDateFormat),
		weekDates: week,
	}
}

// Apply returns the entries matching the filter, preserving order.
func (f Filter) Apply(entries []Entry) []Entry {
	var out []Entry
	for _, entry := range entries {
		if f.matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (f Filter) matches(entry Entry) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(entry.Question), q) &&
			!strings.Contains(strings.ToLower(entry.Answer), q) {
			return false
		}
	}

	if len(f.Documents) > 0 {
		found := false
		for _, doc := range f.Documents {
			if entry.Document == doc {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch f.Range {
	case RangeToday:
		return entry.Date != "" && entry.Date == f.today
	case RangeWeek:
		if entry.Date == "" {
			return false
		}
		for _, date := range f.weekDates {
			if entry.Date == date {
				return true
			}
		}
		return false
	default:
		return true
	}
}

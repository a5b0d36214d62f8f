// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/regguru-tui/internal/api"
	hist "github.com/jeranaias/regguru-tui/internal/history"
	"github.com/jeranaias/regguru-tui/internal/logging"
)

type fakeLister struct {
	records []api.SavedQueryRecord
	err     error
}

func (l *fakeLister) ListQueries(ctx context.Context) ([]api.SavedQueryRecord, error) {
	return l.records, l.err
}

var testNow = time.Date(2025, 4, 4, 14, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, lister *fakeLister) *Model {
	t.Helper()
	m := New(lister, logging.Nop())
	m.WithClock(func() time.Time { return testNow })
	m.resize(80, 24)
	return m
}

func sampleRecords() []api.SavedQueryRecord {
	return []api.SavedQueryRecord{
		{Question: "Policy compliance", Answer: "Section 3.2 applies.", Timestamp: "2025-04-04T09:00:00", Document: "policy.pdf"},
		{Question: "Filing deadlines", Answer: "June 30.", Timestamp: "2025-04-02T09:00:00", Document: "guidelines.docx"},
		{Question: "Audit trail", Answer: "Retained 7 years.", Timestamp: "2025-03-22T09:00:00", Document: "policy.pdf"},
	}
}

func TestLoadPopulatesEntriesAndDocuments(t *testing.T) {
	m := newTestModel(t, &fakeLister{records: sampleRecords()})

	m.Update(LoadedMsg{Entries: hist.EntriesFromQueries(sampleRecords())})
	if len(m.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(m.entries))
	}
	if len(m.filtered) != 3 {
		t.Errorf("filtered = %d, want all visible initially", len(m.filtered))
	}
	if len(m.docChoices) != 2 {
		t.Errorf("docChoices = %v, want two distinct documents", m.docChoices)
	}
}

func TestLoadErrorShowsBanner(t *testing.T) {
	m := newTestModel(t, &fakeLister{err: errors.New("boom")})

	m.Update(LoadedMsg{Err: errors.New("boom")})
	if m.errText == "" {
		t.Error("error banner should be set")
	}
	if m.loading {
		t.Error("loading flag should clear")
	}
}

func TestSearchNarrowsList(t *testing.T) {
	m := newTestModel(t, &fakeLister{})
	m.Update(LoadedMsg{Entries: hist.EntriesFromQueries(sampleRecords())})

	m.search.SetValue("COMPLIANCE")
	m.applyFilter()
	if len(m.filtered) != 1 || m.filtered[0].Question != "Policy compliance" {
		t.Errorf("filtered = %+v, want the compliance entry", m.filtered)
	}
}

func TestCycleRange(t *testing.T) {
	m := newTestModel(t, &fakeLister{})
	m.Update(LoadedMsg{Entries: hist.EntriesFromQueries(sampleRecords())})

	m.cycleRange() // today
	m.applyFilter()
	if len(m.filtered) != 1 {
		t.Errorf("today filtered = %d, want 1", len(m.filtered))
	}

	m.cycleRange() // week: Mar 29 .. Apr 4, Mar 22 excluded
	m.applyFilter()
	if len(m.filtered) != 2 {
		t.Errorf("week filtered = %d, want 2", len(m.filtered))
	}

	m.cycleRange() // back to all
	m.applyFilter()
	if len(m.filtered) != 3 {
		t.Errorf("all filtered = %d, want 3", len(m.filtered))
	}
}

func TestCycleDocumentWrapsToNoRestriction(t *testing.T) {
	m := newTestModel(t, &fakeLister{})
	m.Update(LoadedMsg{Entries: hist.EntriesFromQueries(sampleRecords())})

	m.cycleDocument()
	m.applyFilter()
	if len(m.filtered) != 2 {
		t.Errorf("policy.pdf filtered = %d, want 2", len(m.filtered))
	}

	m.cycleDocument()
	m.applyFilter()
	if len(m.filtered) != 1 {
		t.Errorf("guidelines.docx filtered = %d, want 1", len(m.filtered))
	}

	m.cycleDocument()
	m.applyFilter()
	if len(m.filtered) != 3 {
		t.Errorf("after wrap filtered = %d, want no restriction", len(m.filtered))
	}
}

func TestViewListsEntries(t *testing.T) {
	m := newTestModel(t, &fakeLister{})
	m.Update(LoadedMsg{Entries: hist.EntriesFromQueries(sampleRecords())})

	view := m.View()
	if !strings.Contains(view, "Query History") {
		t.Errorf("view missing header: %q", view)
	}
	if !strings.Contains(view, "3 of 3 entries") {
		t.Errorf("view missing counts: %q", view)
	}
}

func TestTruncateAnswerFirstLineOnly(t *testing.T) {
	got := truncateAnswer("line one\nline two", 80)
	if got != "line one ..." {
		t.Errorf("truncateAnswer = %q", got)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/history"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LoadedMsg delivers the saved queries fetched from the server.
type LoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// =============================================================================
// MODEL
// =============================================================================

// lister is the slice of the API client this view needs.
type lister interface {
	ListQueries(ctx context.Context) ([]api.SavedQueryRecord, error)
}

// Model is the Bubble Tea model for browsing saved queries.
type Model struct {
	client lister
	logger *zap.Logger

	entries  []history.Entry
	filtered []history.Entry
	filter   history.Filter

	// docChoices are the distinct document names seen in the entries,
	// cycled with the document key. Index -1 means no restriction.
	docChoices []string
	docIndex   int

	search   textinput.Model
	viewport viewport.Model

	width   int
	height  int
	ready   bool
	loading bool
	errText string

	now func() time.Time
}

// New creates the history view. Entries load on Init.
func New(client lister, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "Search questions and answers..."
	search.Prompt = "/ "
	search.Focus()

	return &Model{
		client:   client,
		logger:   logger,
		filter:   history.NewFilter(time.Now()),
		docIndex: -1,
		search:   search,
		loading:  true,
		now:      time.Now,
	}
}

// WithClock overrides the wall clock, for tests. The filter's date
// ranges are re-anchored to the new clock.
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	m.filter = history.NewFilter(now())
	return m
}

// Init kicks off the history fetch.
func (m *Model) Init() tea.Cmd {
	return loadCmd(m.client)
}

func loadCmd(client lister) tea.Cmd {
	return func() tea.Msg {
		records, err := client.ListQueries(context.Background())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Entries: history.EntriesFromQueries(records)}
	}
}

// =============================================================================
// FILTER STATE
// =============================================================================

// applyFilter recomputes the visible entries from the current filter
// settings.
func (m *Model) applyFilter() {
	m.filter.Query = m.search.Value()
	if m.docIndex >= 0 && m.docIndex < len(m.docChoices) {
		m.filter.Documents = []string{m.docChoices[m.docIndex]}
	} else {
		m.filter.Documents = nil
	}
	m.filtered = m.filter.Apply(m.entries)
	m.refreshList()
}

// cycleRange steps all -> today -> week -> all.
func (m *Model) cycleRange() {
	switch m.filter.Range {
	case history.RangeToday:
		m.filter.Range = history.RangeWeek
	case history.RangeWeek:
		m.filter.Range = history.RangeAll
	default:
		m.filter.Range = history.RangeToday
	}
}

// cycleDocument steps through no-restriction and each known document.
func (m *Model) cycleDocument() {
	if len(m.docChoices) == 0 {
		return
	}
	m.docIndex++
	if m.docIndex >= len(m.docChoices) {
		m.docIndex = -1
	}
}

// collectDocuments gathers the distinct document names, in first-seen
// order.
func collectDocuments(entries []history.Entry) []string {
	var out []string
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.Document == "" || seen[entry.Document] {
			continue
		}
		seen[entry.Document] = true
		out = append(out, entry.Document)
	}
	return out
}

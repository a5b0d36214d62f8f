// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update is the Bubble Tea message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = "Could not load history: " + msg.Err.Error()
			m.logger.Warn("history fetch failed", zap.Error(msg.Err))
			return m, nil
		}
		m.errText = ""
		m.entries = msg.Entries
		m.docChoices = collectDocuments(msg.Entries)
		m.docIndex = -1
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.cycleRange()
			m.applyFilter()
			return m, nil
		case "ctrl+d":
			m.cycleDocument()
			m.applyFilter()
			return m, nil
		case "ctrl+r":
			m.loading = true
			return m, loadCmd(m.client)
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// Header, search bar, filter line, help line.
	vpHeight := height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refreshList()
}

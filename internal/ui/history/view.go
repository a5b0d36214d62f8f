// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/regguru-tui/internal/history"
	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/util"
)

// View renders the full history screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading history..."
	}

	theme := styles.NewTheme()
	header := theme.Header.Render("Query History")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		theme.InputPrompt.Render(m.search.View()),
		m.filterLine(theme),
		m.viewport.View(),
		theme.Help.Render("Tab cycle range | C-d cycle document | C-r reload | Esc back"),
	)
}

// filterLine summarizes the active restrictions and result count.
func (m *Model) filterLine(theme styles.Theme) string {
	if m.loading {
		return theme.Notice.Render("Loading...")
	}
	if m.errText != "" {
		return theme.ErrorText.Render(m.errText)
	}

	parts := []string{rangeLabel(m.filter.Range)}
	if m.docIndex >= 0 && m.docIndex < len(m.docChoices) {
		parts = append(parts, "doc: "+m.docChoices[m.docIndex])
	} else {
		parts = append(parts, "all documents")
	}
	parts = append(parts, util.IntToString(len(m.filtered))+" of "+util.IntToString(len(m.entries))+" entries")

	return theme.StatusBar.Render(strings.Join(parts, " | "))
}

func rangeLabel(r history.DateRange) string {
	switch r {
	case history.RangeToday:
		return "today"
	case history.RangeWeek:
		return "this week"
	default:
		return "all time"
	}
}

// refreshList re-renders the filtered entries into the viewport.
func (m *Model) refreshList() {
	if !m.ready {
		return
	}

	theme := styles.NewTheme()

	if len(m.filtered) == 0 {
		m.viewport.SetContent(theme.Help.Render("No saved queries match."))
		return
	}

	var b strings.Builder
	for i, entry := range m.filtered {
		if i > 0 {
			b.WriteString("\n")
		}
		meta := entry.Document
		if entry.Date != "" {
			meta += " | " + entry.Date
		}
		b.WriteString(theme.UserLabel.Render("Q: " + entry.Question))
		b.WriteString("\n")
		b.WriteString(theme.BotMessage.Render(truncateAnswer(entry.Answer, m.viewport.Width)))
		b.WriteString("\n")
		b.WriteString(theme.Help.Render(meta))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// truncateAnswer keeps list rows compact: first line only, clipped to
// the viewport width.
func truncateAnswer(answer string, width int) string {
	if i := strings.IndexByte(answer, '\n'); i >= 0 {
		answer = answer[:i] + " ..."
	}
	if width > 8 {
		answer = runewidth.Truncate(answer, width-4, "...")
	}
	return answer
}

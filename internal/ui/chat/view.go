// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/ui/components"
)

// =============================================================================
// LOG RENDERING
// =============================================================================

// refreshLog re-renders the message log into the viewport. Messages
// are grouped by calendar day with a separator above each group.
func (m *Model) refreshLog() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, group := range m.session.GroupByDate() {
		label := FormatDay(group.Date, m.now())
		b.WriteString(m.theme.DateSeparator.Render(separatorLine(label, m.viewport.Width)))
		b.WriteString("\n\n")

		for _, msg := range group.Messages {
			b.WriteString(m.renderMessage(msg))
			b.WriteString("\n\n")
		}
	}

	m.viewport.SetContent(b.String())
}

func (m *Model) renderMessage(msg model.Message) string {
	label := msg.Role.DisplayName() + "  " + msg.Timestamp.Format("15:04")

	if msg.Role == model.RoleUser {
		return m.theme.UserLabel.Render(label) + "\n" +
			m.theme.UserMessage.Render(wrapPlain(msg.Text, m.wrapWidth()))
	}

	body := m.renderMarkdown(msg.Text)
	return m.theme.BotLabel.Render(label) + "\n" +
		m.theme.BotMessage.Render(body)
}

// renderMarkdown runs answers through glamour, falling back to plain
// wrapping when the renderer is unavailable or chokes.
func (m *Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return wrapPlain(text, m.wrapWidth())
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return wrapPlain(text, m.wrapWidth())
	}
	return strings.TrimRight(out, "\n")
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m *Model) View() string {
	if !m.ready {
		return "Starting Reg-Guru..."
	}

	header := m.theme.Header.Render("Reg-Guru")
	if recent := m.flow.Recent(3); len(recent) > 0 {
		names := make([]string, 0, len(recent))
		for _, doc := range recent {
			names = append(names, doc.Filename)
		}
		header += m.theme.Help.Render("  recent: " + strings.Join(names, ", "))
	}

	bar := components.StatusBar{
		Width:     m.width,
		Document:  m.activeDocument(),
		Connected: m.connected,
		Messages:  m.session.Len(),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.bannerLine(),
		bar.View(),
		m.theme.InputPrompt.Render(m.input.View()),
		m.helpLine(),
	)
}

// bannerLine is the single transient row between the log and the
// status bar. Priority: error, typing, jump banner, notice.
func (m *Model) bannerLine() string {
	switch {
	case m.errText != "":
		return m.theme.ErrorText.Render(m.errText)
	case m.typing.Active():
		return m.theme.Typing.Render(m.typing.View())
	case m.scroll.ShowJumpToLatest():
		return m.theme.JumpBanner.Render("v New messages below. Press End to jump to latest.")
	case m.notice != "":
		return m.theme.Notice.Render(m.notice)
	default:
		return ""
	}
}

func (m *Model) helpLine() string {
	if m.cfg.UI.CompactMode && !m.showHelp {
		return ""
	}
	if m.showHelp {
		parts := []string{}
		for _, group := range m.keys.FullHelp() {
			for _, b := range group {
				parts = append(parts, b.Help().Key+" "+b.Help().Desc)
			}
		}
		return m.theme.Help.Render(strings.Join(parts, " | "))
	}
	return m.theme.Help.Render("Enter send | /upload <path> | /feedback up|down | C-l clear | C-h help | C-c quit")
}

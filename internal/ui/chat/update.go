// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the Bubble Tea message loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChatResultMsg:
		return m.handleChatResult(msg)

	case QuerySavedMsg:
		if msg.Err != nil {
			m.logger.Warn("save query failed", zap.Error(msg.Err))
		}
		return m, nil

	case UploadResultMsg:
		return m.handleUploadResult(msg)

	case DocumentsLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("document list fetch failed", zap.Error(msg.Err))
			return m, nil
		}
		m.serverDocs = msg.Documents
		m.connected = true
		return m, nil

	case PingResultMsg:
		m.connected = msg.Connected
		if !msg.Connected {
			m.errText = "Server unreachable at " + m.client.BaseURL()
		}
		return m, nil

	case FeedbackLoggedMsg:
		if msg.Err != nil {
			m.errText = "Feedback not recorded: " + msg.Err.Error()
		} else {
			m.notice = "Feedback recorded, thank you"
		}
		return m, nil
	}

	// Spinner ticks and other component traffic.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.typing, cmd = m.typing.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.notice = "Session cleared"
		m.errText = ""
		m.typing.Stop()
		m.scroll.JumpToLatest()
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.scroll.JumpToLatest()
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Up),
		key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp),
		key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.scroll.HandleScroll(m.linesFromBottom())
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		if cmd, handled := m.handleSlashCommand(); handled {
			return m, cmd
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSlashCommand intercepts "/..." input. Returns handled=false
// when the input is a plain question.
func (m *Model) handleSlashCommand() (tea.Cmd, bool) {
	text := strings.TrimSpace(m.input.Value())
	if !strings.HasPrefix(text, "/") {
		return nil, false
	}

	fields := strings.Fields(text)
	m.input.Reset()
	m.notice = ""
	m.errText = ""

	switch fields[0] {
	case "/upload":
		if len(fields) < 2 {
			m.errText = "Usage: /upload <path>"
			return nil, true
		}
		if m.flow.Uploading() {
			m.notice = "An upload is already in progress"
			return nil, true
		}
		m.notice = "Uploading " + fields[1] + "..."
		return uploadCmd(m.flow, strings.Join(fields[1:], " ")), true

	case "/clear":
		m.session.Clear()
		m.typing.Stop()
		m.scroll.JumpToLatest()
		m.refreshLog()
		m.notice = "Session cleared"
		return nil, true

	case "/feedback":
		rating := api.RatingThumbsUp
		if len(fields) > 1 && (fields[1] == "down" || fields[1] == api.RatingThumbsDown) {
			rating = api.RatingThumbsDown
		}
		question, answer, ok := m.lastExchange()
		if !ok {
			m.errText = "Nothing to rate yet"
			return nil, true
		}
		return feedbackCmd(m.client, question, answer, rating), true

	case "/help":
		m.showHelp = !m.showHelp
		return nil, true

	default:
		m.errText = "Unknown command " + fields[0]
		return nil, true
	}
}

// =============================================================================
// RESULT HANDLING
// =============================================================================

func (m *Model) handleChatResult(msg ChatResultMsg) (tea.Model, tea.Cmd) {
	// Results for a session that has since been cleared are stale.
	if msg.SessionKey != m.session.Key() {
		m.logger.Debug("dropping stale chat result",
			zap.String("session", msg.SessionKey),
			zap.Uint64("seq", msg.Seq))
		return m, nil
	}

	var cmd tea.Cmd
	if msg.Err != nil {
		m.session.ResolveFailure(msg.Seq, m.now())
		m.errText = msg.Err.Error()
	} else {
		m.session.ResolveSuccess(msg.Seq, msg.Answer, m.now())
		cmd = saveQueryCmd(m.client, msg.Question, msg.Answer, m.activeDocument())
	}

	if !m.session.IsTyping() {
		m.typing.Stop()
	}
	m.refreshLog()
	if m.scroll.AutoScroll() {
		m.viewport.GotoBottom()
	}
	return m, cmd
}

func (m *Model) handleUploadResult(msg UploadResultMsg) (tea.Model, tea.Cmd) {
	outcome := msg.Outcome
	switch outcome.Kind {
	case upload.OutcomeSuccess:
		m.notice = "Uploaded " + outcome.Filename
		if strings.TrimSpace(m.input.Value()) == "" {
			m.input.SetValue(outcome.SuggestedQuestion)
			m.input.CursorEnd()
		}
	case upload.OutcomeDuplicate:
		m.notice = outcome.Notice
	case upload.OutcomeSkipped:
		m.notice = outcome.Notice
	case upload.OutcomeFailure:
		m.errText = "Upload failed: " + outcome.Notice
	}
	return m, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/util"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator animates while the assistant is composing an answer.
// ASCII frames so it renders on any terminal.
type TypingIndicator struct {
	spinner spinner.Model
	active  bool
	started time.Time
}

// NewTypingIndicator creates an inactive indicator.
func NewTypingIndicator() TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(styles.Cyan)
	return TypingIndicator{spinner: s}
}

// Start activates the indicator and returns the tick command that
// drives the animation.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	t.started = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether the indicator is running.
func (t TypingIndicator) Active() bool {
	return t.active
}

// Update advances the animation. Tick messages are dropped while
// inactive so a stopped indicator goes quiet.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.active {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator line, or an empty string while inactive.
func (t TypingIndicator) View() string {
	if !t.active {
		return ""
	}
	label := "Reg-Guru is typing"
	if elapsed := time.Since(t.started); elapsed >= 5*time.Second {
		label += " (" + formatElapsed(elapsed) + ")"
	}
	return t.spinner.View() + " " + label
}

// formatElapsed renders a duration as "Ns" or "NmSSs".
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return util.IntToString(secs) + "s"
	}
	mins := secs / 60
	secs = secs % 60
	out := util.IntToString(mins) + "m"
	if secs < 10 {
		out += "0"
	}
	return out + util.IntToString(secs) + "s"
}

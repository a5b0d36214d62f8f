// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/regguru-tui/internal/ui/styles"
	"github.com/jeranaias/regguru-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar renders a single line of session facts under the chat log:
// active document on the left, connection state and message count on
// the right.
type StatusBar struct {
	Width     int
	Document  string
	Connected bool
	Messages  int
}

// View renders the bar padded to Width display columns.
func (s StatusBar) View() string {
	theme := styles.NewTheme()

	left := "doc: " + s.Document
	conn := "offline"
	if s.Connected {
		conn = "online"
	}
	right := conn + " | " + util.IntToString(s.Messages) + " msgs"

	gap := s.Width - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	if gap < 1 {
		// Narrow terminal: keep the document name, truncated.
		avail := s.Width - runewidth.StringWidth(right) - 3
		if avail > 0 {
			left = runewidth.Truncate(left, avail, "~")
		} else {
			left = ""
		}
		gap = 1
	}

	return theme.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// DATE SEPARATORS
// =============================================================================

// FormatDay renders a group's calendar day as a separator label:
// "Today", "Yesterday", or the date itself.
func FormatDay(day time.Time, now time.Time) string {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Jan 2, 2006")
	}
}

// separatorLine centers a label in a rule of dashes sized to width.
func separatorLine(label string, width int) string {
	inner := " " + label + " "
	fill := width - runewidth.StringWidth(inner)
	if fill < 2 {
		return inner
	}
	left := fill / 2
	right := fill - left
	return strings.Repeat("-", left) + inner + strings.Repeat("-", right)
}

// =============================================================================
// TEXT WRAPPING
// =============================================================================

// wrapPlain word-wraps text to the given display width, preserving
// existing newlines. Words longer than the width are left intact.
func wrapPlain(text string, width int) string {
	if width <= 0 {
		return text
	}

	var out strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(wrapLine(line, width))
	}
	return out.String()
}

func wrapLine(line string, width int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var out strings.Builder
	current := words[0]
	for _, word := range words[1:] {
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width {
			out.WriteString(current)
			out.WriteByte('\n')
			current = word
			continue
		}
		current += " " + word
	}
	out.WriteString(current)
	return out.String()
}

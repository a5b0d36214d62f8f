// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME RESOLUTION
// =============================================================================

// ResolveTheme applies the configured theme name. "dark" and "light"
// force lipgloss to one side of every adaptive pair; anything else
// leaves background detection to termenv.
func ResolveTheme(name string) {
	switch name {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}

// =============================================================================
// CHAT STYLES
// =============================================================================

// Theme bundles the styles the chat view composes from.
type Theme struct {
	Header        lipgloss.Style
	UserLabel     lipgloss.Style
	UserMessage   lipgloss.Style
	BotLabel      lipgloss.Style
	BotMessage    lipgloss.Style
	DateSeparator lipgloss.Style
	Typing        lipgloss.Style
	JumpBanner    lipgloss.Style
	StatusBar     lipgloss.Style
	StatusKey     lipgloss.Style
	Notice        lipgloss.Style
	ErrorText     lipgloss.Style
	InputPrompt   lipgloss.Style
	Help          lipgloss.Style
}

// NewTheme builds the default chat theme from the shared palette.
func NewTheme() Theme {
	return Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Purple).
			Padding(0, 1),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(UserBubble),
		UserMessage: lipgloss.NewStyle().
			Foreground(TextPrimary).
			PaddingLeft(2),
		BotLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan),
		BotMessage: lipgloss.NewStyle().
			Foreground(TextPrimary).
			PaddingLeft(2),
		DateSeparator: lipgloss.NewStyle().
			Foreground(DateSeparator).
			Align(lipgloss.Center),
		Typing: lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true),
		JumpBanner: lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(SurfaceRaised).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(Amber),
		ErrorText: lipgloss.NewStyle().
			Foreground(Rose),
		InputPrompt: lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(TextFaint),
	}
}

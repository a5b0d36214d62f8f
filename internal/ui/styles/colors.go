// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// CORE PALETTE
// =============================================================================

var (
	// Purple is the primary brand color.
	Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

	// Cyan marks interactive accents and links.
	Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

	// Emerald marks success.
	Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

	// Rose marks errors.
	Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

	// Amber marks warnings and notices.
	Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
)

// =============================================================================
// SURFACES AND TEXT
// =============================================================================

var (
	Surface       = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	SurfaceRaised = lipgloss.AdaptiveColor{Light: "#F4F4F5", Dark: "#2A2A3C"}

	TextPrimary = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#E4E4E7"}
	TextMuted   = lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#A1A1AA"}
	TextFaint   = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#52525B"}

	Border = lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#3F3F46"}
)

// =============================================================================
// CHAT
// =============================================================================

var (
	// UserBubble colors outgoing messages.
	UserBubble = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#8B5CF6"}

	// BotBubble colors assistant answers.
	BotBubble = lipgloss.AdaptiveColor{Light: "#E4E4E7", Dark: "#313244"}

	// DateSeparator colors the day headers between message groups.
	DateSeparator = TextFaint
)

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// ASCII indicators render everywhere, including terminals without
// good glyph coverage.
const (
	IndicatorOK      = "[OK]"
	IndicatorError   = "[X]"
	IndicatorWarning = "[!]"
	IndicatorInfo    = "[i]"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Emerald)
	errorStyle   = lipgloss.NewStyle().Foreground(Rose)
	warningStyle = lipgloss.NewStyle().Foreground(Amber)
	infoStyle    = lipgloss.NewStyle().Foreground(Cyan)
)

// RenderSuccess formats a success line with its indicator.
func RenderSuccess(text string) string {
	return successStyle.Render(IndicatorOK + " " + text)
}

// RenderError formats an error line with its indicator.
func RenderError(text string) string {
	return errorStyle.Render(IndicatorError + " " + text)
}

// RenderWarning formats a warning line with its indicator.
func RenderWarning(text string) string {
	return warningStyle.Render(IndicatorWarning + " " + text)
}

// RenderInfo formats an informational line with its indicator.
func RenderInfo(text string) string {
	return infoStyle.Render(IndicatorInfo + " " + text)
}

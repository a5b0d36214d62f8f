// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles holds the shared color palette and lipgloss styles for
// the terminal UI.
//
// Colors are lipgloss.AdaptiveColor values so the same palette reads
// well on light and dark terminals. The "auto" theme defers to termenv
// background detection; "dark" and "light" force one side of each
// adaptive pair.
package styles

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "strconv"

// TruncateRunes truncates a string to a maximum number of runes.
// Rune-based truncation never splits a multi-byte UTF-8 character.
// If the string is truncated, "..." is appended.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// RuneLen returns the number of runes in a string.
// Safer than len() for UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}

// PadRight pads a string with spaces to the given rune width.
// Strings already at or over the width are returned unchanged.
func PadRight(s string, width int) string {
	for RuneLen(s) < width {
		s += " "
	}
	return s
}

// IntToString converts an integer to its decimal representation.
func IntToString(n int) string {
	return strconv.Itoa(n)
}

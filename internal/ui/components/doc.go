// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides small reusable Bubble Tea widgets: the
// typing indicator shown while an answer is pending and the status bar
// rendered under the chat log.
package components

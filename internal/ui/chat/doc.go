// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea chat view.
//
// # Key Types
//
//   - Model: the top-level Bubble Tea model wiring the session log,
//     viewport, input field, typing indicator, and status bar.
//   - KeyMap: keyboard bindings with help text.
//
// # Behavior
//
// Sends are optimistic: the question appears in the log immediately and
// a tagged request goes to the server. Results carry the session key
// and send sequence back, so answers landing after a Clear or out of
// order are handled by the session manager rather than trusted
// blindly. The viewport follows the newest message until the user
// scrolls up past a small threshold; a jump-to-latest banner shows the
// way back.
package chat

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session implements the chat session core: the ordered message
// log, its persistence, the typing indicator state, and the scroll
// follow/detached state machine.
//
// The Manager is the single writer of a session's message log. Sends
// are optimistic: the user message is appended and persisted before the
// server answers, and each send is tagged with a sequence number so
// answers that arrive out of order are still applied in the order the
// questions were asked.
//
// # Key Types
//
//   - Manager: message log, persistence, send/resolve cycle
//   - ScrollState: follow vs detached viewport state
//
// # Usage
//
//	mgr := session.NewManager("", store, logger)
//	mgr.Restore()
//	seq, ok := mgr.Send("What is the retention period?", time.Now())
//	// ... later, from the network layer:
//	mgr.ResolveSuccess(seq, answer, time.Now())
package session

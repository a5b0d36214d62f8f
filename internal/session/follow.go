// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

// =============================================================================
// SCROLL FOLLOW STATE
// =============================================================================

// DefaultFollowThreshold is how many lines from the bottom still count
// as "at the bottom". Scrolling past it detaches the view.
const DefaultFollowThreshold = 2

// ScrollState tracks whether the chat viewport follows new messages or
// stays where the user scrolled to.
//
// Following: the view pins to the newest message and every append
// scrolls to it. Detached: the view holds its position and a
// jump-to-latest affordance is shown instead.
type ScrollState struct {
	following bool
	threshold int
}

// NewScrollState creates a scroll state in following mode.
func NewScrollState() *ScrollState {
	return &ScrollState{following: true, threshold: DefaultFollowThreshold}
}

// WithThreshold sets a custom bottom threshold in lines.
func (s *ScrollState) WithThreshold(lines int) *ScrollState {
	if lines >= 0 {
		s.threshold = lines
	}
	return s
}

// Following reports whether the view is pinned to the newest message.
func (s *ScrollState) Following() bool {
	return s.following
}

// ShowJumpToLatest reports whether the jump-to-latest affordance should
// be visible.
func (s *ScrollState) ShowJumpToLatest() bool {
	return !s.following
}

// HandleScroll updates the state after the user scrolls.
// linesFromBottom is the distance between the viewport bottom and the
// end of the log: within the threshold re-attaches, beyond it detaches.
func (s *ScrollState) HandleScroll(linesFromBottom int) {
	s.following = linesFromBottom <= s.threshold
}

// JumpToLatest re-attaches the view to the newest message.
func (s *ScrollState) JumpToLatest() {
	s.following = true
}

// OnUserSend re-attaches the view: sending a message always brings the
// user back to the bottom.
func (s *ScrollState) OnUserSend() {
	s.following = true
}

// AutoScroll reports whether an appended message should scroll the
// view. Detached views never move under the user.
func (s *ScrollState) AutoScroll() bool {
	return s.following
}

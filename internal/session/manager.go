// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/storage"
)

// FallbackErrorText is appended as the bot's reply when a send fails
// for any reason.
const FallbackErrorText = "Sorry, something went wrong. Please try again."

// resolution is a buffered answer waiting for its turn in the log.
type resolution struct {
	answer string
	failed bool
	at     time.Time
}

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager owns one chat session: its message log, persistence, and the
// send/resolve cycle. Methods are safe for concurrent use; the network
// layer resolves sends from other goroutines.
type Manager struct {
	mu sync.Mutex

	key    string
	store  storage.Store
	logger *zap.Logger

	messages []model.Message
	lastID   int64

	// Send ordering. nextSeq tags outgoing sends; appliedSeq is the
	// last send whose answer has been appended. Answers for later
	// sends wait in pending until every earlier answer has landed.
	nextSeq    uint64
	appliedSeq uint64
	pending    map[uint64]resolution

	// awaiting counts sends without an applied answer; the typing
	// indicator shows while it is positive.
	awaiting int
}

// NewManager creates a manager for the session identified by key. An
// empty key starts a fresh session keyed by the current time.
func NewManager(key string, store storage.Store, logger *zap.Logger) *Manager {
	if key == "" {
		key = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		key:     key,
		store:   store,
		logger:  logger,
		pending: make(map[uint64]resolution),
	}
}

// Key returns the session key.
func (m *Manager) Key() string {
	return m.key
}

// storageKey returns the persistence key for this session's log.
func (m *Manager) storageKey() string {
	return "chat-" + m.key + "-messages"
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Restore loads the persisted message log. A missing or corrupt log
// starts the session empty rather than failing: losing history is
// better than refusing to chat.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := m.store.Get(m.storageKey())
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.Warn("failed to load session", zap.String("session", m.key), zap.Error(err))
		}
		return
	}

	var messages []model.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		m.logger.Warn("discarding corrupt session log", zap.String("session", m.key), zap.Error(err))
		return
	}

	m.messages = messages
	for _, msg := range messages {
		if msg.ID > m.lastID {
			m.lastID = msg.ID
		}
	}
}

// persistLocked writes the log to the store. Empty logs are not
// written, so abandoned sessions leave nothing behind. Callers hold mu.
func (m *Manager) persistLocked() {
	if len(m.messages) == 0 {
		return
	}

	data, err := json.Marshal(m.messages)
	if err != nil {
		m.logger.Error("failed to encode session log", zap.String("session", m.key), zap.Error(err))
		return
	}
	if err := m.store.Set(m.storageKey(), data); err != nil {
		m.logger.Error("failed to persist session log", zap.String("session", m.key), zap.Error(err))
	}
}

// Clear removes the session's messages and its persisted log.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = nil
	m.lastID = 0
	m.pending = make(map[uint64]resolution)
	m.awaiting = 0
	m.nextSeq = 0
	m.appliedSeq = 0

	if err := m.store.Delete(m.storageKey()); err != nil {
		m.logger.Warn("failed to delete session log", zap.String("session", m.key), zap.Error(err))
	}
}

// =============================================================================
// SEND / RESOLVE CYCLE
// =============================================================================

// Send appends the user's message optimistically and returns the
// sequence number the caller must use to resolve the answer. Blank
// input is a no-op and returns ok=false.
func (m *Manager) Send(text string, at time.Time) (seq uint64, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	msg := model.NewMessage(model.RoleUser, text, at, m.lastID)
	m.lastID = msg.ID
	m.messages = append(m.messages, msg)
	m.persistLocked()

	m.nextSeq++
	m.awaiting++
	return m.nextSeq, true
}

// ResolveSuccess delivers the answer for a send. Answers are applied
// strictly in send order: an answer that arrives early waits until all
// earlier sends have resolved.
func (m *Manager) ResolveSuccess(seq uint64, answer string, at time.Time) {
	m.resolve(seq, resolution{answer: answer, at: at})
}

// ResolveFailure marks a send as failed. The log gets the fallback
// apology in place of an answer, keeping one bot reply per question.
func (m *Manager) ResolveFailure(seq uint64, at time.Time) {
	m.resolve(seq, resolution{failed: true, at: at})
}

func (m *Manager) resolve(seq uint64, res resolution) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Resolutions for unknown or already-applied sends are dropped.
	// This absorbs late answers from a cleared or stale session.
	if seq == 0 || seq > m.nextSeq || seq <= m.appliedSeq {
		m.logger.Debug("ignoring stale resolution",
			zap.String("session", m.key), zap.Uint64("seq", seq))
		return
	}
	if _, dup := m.pending[seq]; dup {
		return
	}

	m.pending[seq] = res
	m.applyPendingLocked()
}

// applyPendingLocked drains consecutively resolvable sends. Callers
// hold mu.
func (m *Manager) applyPendingLocked() {
	appended := false
	for {
		res, ok := m.pending[m.appliedSeq+1]
		if !ok {
			break
		}
		delete(m.pending, m.appliedSeq+1)
		m.appliedSeq++
		m.awaiting--

		text := res.answer
		if res.failed || strings.TrimSpace(text) == "" {
			text = FallbackErrorText
		}
		msg := model.NewMessage(model.RoleBot, text, res.at, m.lastID)
		m.lastID = msg.ID
		m.messages = append(m.messages, msg)
		appended = true
	}
	if appended {
		m.persistLocked()
	}
}

// IsTyping reports whether any send is still waiting for its answer.
func (m *Manager) IsTyping() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awaiting > 0
}

// PendingSends returns the number of unresolved sends.
func (m *Manager) PendingSends() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awaiting
}

// =============================================================================
// LOG ACCESS
// =============================================================================

// Messages returns a copy of the message log in display order.
func (m *Manager) Messages() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Len returns the number of messages in the log.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// LastMessage returns the newest message, if any.
func (m *Manager) LastMessage() (model.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.messages) == 0 {
		return model.Message{}, false
	}
	return m.messages[len(m.messages)-1], true
}

// GroupByDate returns the log grouped into calendar-day sections.
func (m *Manager) GroupByDate() []model.DateGroup {
	return model.GroupMessagesByDate(m.Messages())
}

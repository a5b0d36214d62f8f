// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/config"
	"github.com/jeranaias/regguru-tui/internal/logging"
	"github.com/jeranaias/regguru-tui/internal/session"
	"github.com/jeranaias/regguru-tui/internal/storage"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	sess := session.NewManager("test", storage.NewMemStore(), logging.Nop())
	client := api.NewClient("http://127.0.0.1:5000")
	flow := upload.NewFlow(client, logging.Nop())
	m := New(config.Default(), client, sess, flow, logging.Nop())
	m.WithClock(func() time.Time { return testNow })
	m.resize(80, 24)
	return m
}

func TestSubmitAppendsQuestionAndStartsTyping(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("What is rule 10b-5?")

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should produce a command")
	}
	if m.session.Len() != 1 {
		t.Fatalf("log length = %d, want 1", m.session.Len())
	}
	if !m.typing.Active() {
		t.Error("typing indicator should start on send")
	}
	if m.input.Value() != "" {
		t.Error("input should clear after send")
	}
}

func TestSubmitBlankIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank submit should not produce a command")
	}
	if m.session.Len() != 0 {
		t.Error("blank submit should not touch the log")
	}
}

func TestChatResultResolvesAndSaves(t *testing.T) {
	m := newTestModel(t)
	seq, _ := m.session.Send("question", testNow)
	m.typing.Start()

	_, cmd := m.handleChatResult(ChatResultMsg{
		SessionKey: m.session.Key(),
		Seq:        seq,
		Question:   "question",
		Answer:     "answer",
	})
	if cmd == nil {
		t.Error("successful result should queue a save-query command")
	}
	if m.session.Len() != 2 {
		t.Fatalf("log length = %d, want question and answer", m.session.Len())
	}
	if m.typing.Active() {
		t.Error("typing indicator should stop when nothing is pending")
	}
}

func TestChatResultFailureShowsApology(t *testing.T) {
	m := newTestModel(t)
	seq, _ := m.session.Send("question", testNow)

	_, cmd := m.handleChatResult(ChatResultMsg{
		SessionKey: m.session.Key(),
		Seq:        seq,
		Question:   "question",
		Err:        errors.New("boom"),
	})
	if cmd != nil {
		t.Error("failed result must not save to history")
	}

	last, ok := m.session.LastMessage()
	if !ok || last.Text != session.FallbackErrorText {
		t.Errorf("last message = %+v, want fallback apology", last)
	}
	if m.errText == "" {
		t.Error("error banner should be set")
	}
}

func TestStaleSessionResultDropped(t *testing.T) {
	m := newTestModel(t)
	seq, _ := m.session.Send("question", testNow)
	staleKey := m.session.Key()
	m.session.Clear()

	m.handleChatResult(ChatResultMsg{
		SessionKey: staleKey,
		Seq:        seq,
		Answer:     "late answer",
	})
	if m.session.Len() != 0 {
		t.Errorf("log length = %d, cleared session must ignore stale results", m.session.Len())
	}
}

func TestUploadSuccessPrefillsEmptyInput(t *testing.T) {
	m := newTestModel(t)

	m.handleUploadResult(UploadResultMsg{Outcome: upload.Outcome{
		Kind:              upload.OutcomeSuccess,
		Filename:          "policy.pdf",
		SuggestedQuestion: upload.SuggestQuestion("policy.pdf"),
	}})
	if m.input.Value() != "What is the main topic of policy.pdf?" {
		t.Errorf("input = %q, want suggested question", m.input.Value())
	}
}

func TestUploadSuccessLeavesTypedInputAlone(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("my draft question")

	m.handleUploadResult(UploadResultMsg{Outcome: upload.Outcome{
		Kind:              upload.OutcomeSuccess,
		Filename:          "policy.pdf",
		SuggestedQuestion: upload.SuggestQuestion("policy.pdf"),
	}})
	if m.input.Value() != "my draft question" {
		t.Errorf("input = %q, draft should survive", m.input.Value())
	}
}

func TestUploadDuplicateShowsNotice(t *testing.T) {
	m := newTestModel(t)

	m.handleUploadResult(UploadResultMsg{Outcome: upload.Outcome{
		Kind:     upload.OutcomeDuplicate,
		Filename: "policy.pdf",
		Notice:   upload.DuplicateNotice,
	}})
	if m.notice != upload.DuplicateNotice {
		t.Errorf("notice = %q", m.notice)
	}
	if m.errText != "" {
		t.Error("duplicates are not errors")
	}
}

func TestSlashUploadRequiresPath(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("/upload")

	cmd, handled := m.handleSlashCommand()
	if !handled || cmd != nil {
		t.Fatal("bare /upload should be handled without a command")
	}
	if !strings.Contains(m.errText, "Usage") {
		t.Errorf("errText = %q, want usage hint", m.errText)
	}
}

func TestSlashFeedbackNeedsAnExchange(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("/feedback up")

	cmd, handled := m.handleSlashCommand()
	if !handled || cmd != nil {
		t.Fatal("feedback with empty log should be handled without a command")
	}
	if m.errText == "" {
		t.Error("should explain there is nothing to rate")
	}
}

func TestSlashFeedbackUsesLastExchange(t *testing.T) {
	m := newTestModel(t)
	seq, _ := m.session.Send("q1", testNow)
	m.session.ResolveSuccess(seq, "a1", testNow)

	m.input.SetValue("/feedback down")
	cmd, handled := m.handleSlashCommand()
	if !handled || cmd == nil {
		t.Fatal("feedback with an exchange should queue a command")
	}
}

func TestViewShowsJumpBannerWhenDetached(t *testing.T) {
	m := newTestModel(t)
	m.scroll.HandleScroll(10)

	if !m.scroll.ShowJumpToLatest() {
		t.Fatal("scroll state should be detached")
	}
	if !strings.Contains(m.bannerLine(), "jump to latest") {
		t.Errorf("banner = %q, want jump hint", m.bannerLine())
	}
}

func TestLastExchangePairsAnswerWithQuestion(t *testing.T) {
	m := newTestModel(t)
	seq1, _ := m.session.Send("q1", testNow)
	m.session.ResolveSuccess(seq1, "a1", testNow)
	seq2, _ := m.session.Send("q2", testNow)
	m.session.ResolveSuccess(seq2, "a2", testNow)

	q, a, ok := m.lastExchange()
	if !ok || q != "q2" || a != "a2" {
		t.Errorf("lastExchange = %q/%q/%v, want q2/a2", q, a, ok)
	}
}

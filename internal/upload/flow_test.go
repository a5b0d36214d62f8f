// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/logging"
)

// fakeUploader scripts UploadDocument responses.
type fakeUploader struct {
	mu      sync.Mutex
	result  *api.UploadResult
	err     error
	calls   int
	started chan struct{}
	release chan struct{}
}

func (u *fakeUploader) UploadDocument(ctx context.Context, filename string, content io.Reader) (*api.UploadResult, error) {
	u.mu.Lock()
	u.calls++
	u.mu.Unlock()
	if u.started != nil {
		u.started <- struct{}{}
	}
	if u.release != nil {
		<-u.release
	}
	if u.err != nil {
		return nil, u.err
	}
	if u.result != nil {
		return u.result, nil
	}
	return &api.UploadResult{Message: "Document processed successfully", Filename: filename}, nil
}

func (u *fakeUploader) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls
}

func TestUploadSuccess(t *testing.T) {
	flow := NewFlow(&fakeUploader{}, logging.Nop())

	outcome := flow.Upload(context.Background(), "policy.pdf", strings.NewReader("bytes"))
	if outcome.Kind != OutcomeSuccess {
		t.Fatalf("Kind = %v, want success", outcome.Kind)
	}
	if outcome.SuggestedQuestion != "What is the main topic of policy.pdf?" {
		t.Errorf("SuggestedQuestion = %q", outcome.SuggestedQuestion)
	}

	docs := flow.Documents()
	if len(docs) != 1 || docs[0].Filename != "policy.pdf" {
		t.Errorf("Documents = %+v", docs)
	}
	if flow.Uploading() {
		t.Error("uploading flag should clear after completion")
	}
}

func TestUploadDuplicateJoinsRecentList(t *testing.T) {
	flow := NewFlow(&fakeUploader{err: api.ErrDuplicateDocument}, logging.Nop())

	outcome := flow.Upload(context.Background(), "policy.pdf", strings.NewReader("bytes"))
	if outcome.Kind != OutcomeDuplicate {
		t.Fatalf("Kind = %v, want duplicate", outcome.Kind)
	}
	if outcome.Notice != DuplicateNotice {
		t.Errorf("Notice = %q", outcome.Notice)
	}

	// Duplicates are still usable for questions.
	if got := flow.ActiveDocument(); got != "policy.pdf" {
		t.Errorf("ActiveDocument = %q, want the duplicate file", got)
	}
}

func TestUploadFailure(t *testing.T) {
	uploadErr := &api.ClientError{Type: api.ErrorTypeStatus, Message: "Document processing failed", StatusCode: 500}
	flow := NewFlow(&fakeUploader{err: uploadErr}, logging.Nop())

	outcome := flow.Upload(context.Background(), "policy.pdf", strings.NewReader("bytes"))
	if outcome.Kind != OutcomeFailure {
		t.Fatalf("Kind = %v, want failure", outcome.Kind)
	}
	if outcome.Err == nil {
		t.Error("failure outcome should carry the error")
	}

	// Failed uploads do not join the recent list.
	if len(flow.Documents()) != 0 {
		t.Errorf("Documents = %+v, want empty", flow.Documents())
	}
	if flow.ActiveDocument() != DefaultDocumentName {
		t.Errorf("ActiveDocument = %q, want fallback", flow.ActiveDocument())
	}
	if flow.Uploading() {
		t.Error("uploading flag should clear after a failure")
	}
}

func TestUploadFlagClearsOnPanicPath(t *testing.T) {
	// The flag clears via defer even when the outcome path errors.
	flow := NewFlow(&fakeUploader{err: api.ErrTimeout}, logging.Nop())
	flow.Upload(context.Background(), "a.pdf", strings.NewReader("x"))
	if flow.Uploading() {
		t.Error("uploading flag stuck after error")
	}
}

func TestConcurrentUploadSkipped(t *testing.T) {
	uploader := &fakeUploader{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	flow := NewFlow(uploader, logging.Nop())

	done := make(chan Outcome, 1)
	go func() {
		done <- flow.Upload(context.Background(), "first.pdf", strings.NewReader("x"))
	}()
	<-uploader.started

	second := flow.Upload(context.Background(), "second.pdf", strings.NewReader("y"))
	if second.Kind != OutcomeSkipped {
		t.Errorf("second upload Kind = %v, want skipped", second.Kind)
	}

	close(uploader.release)
	first := <-done
	if first.Kind != OutcomeSuccess {
		t.Errorf("first upload Kind = %v, want success", first.Kind)
	}
	if uploader.callCount() != 1 {
		t.Errorf("server called %d times, want 1", uploader.callCount())
	}
}

func TestActiveDocumentTracksNewest(t *testing.T) {
	flow := NewFlow(&fakeUploader{}, logging.Nop())
	flow.WithClock(func() time.Time { return time.Date(2025, 4, 4, 10, 0, 0, 0, time.UTC) })

	flow.Upload(context.Background(), "first.pdf", strings.NewReader("a"))
	flow.Upload(context.Background(), "second.pdf", strings.NewReader("b"))

	if got := flow.ActiveDocument(); got != "second.pdf" {
		t.Errorf("ActiveDocument = %q, want second.pdf", got)
	}
	if docs := flow.Documents(); len(docs) != 2 {
		t.Errorf("Documents = %+v, want 2 entries", docs)
	}
}

func TestRecentNewestFirstAndCapped(t *testing.T) {
	flow := NewFlow(&fakeUploader{}, logging.Nop())
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"} {
		flow.Upload(context.Background(), name, strings.NewReader("x"))
	}

	recent := flow.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Recent = %d entries, want 3", len(recent))
	}
	if recent[0].Filename != "d.pdf" || recent[2].Filename != "b.pdf" {
		t.Errorf("Recent order = %+v, want newest first", recent)
	}

	if got := flow.Recent(10); len(got) != 4 {
		t.Errorf("Recent(10) = %d entries, want all 4", len(got))
	}
}

func TestUploadUsesServerFilename(t *testing.T) {
	uploader := &fakeUploader{result: &api.UploadResult{
		Message:  "Document processed successfully",
		Filename: "normalized.pdf",
	}}
	flow := NewFlow(uploader, logging.Nop())

	outcome := flow.Upload(context.Background(), "Original Name.PDF", strings.NewReader("x"))
	if outcome.Filename != "normalized.pdf" {
		t.Errorf("Filename = %q, want server-normalized name", outcome.Filename)
	}
	if flow.ActiveDocument() != "normalized.pdf" {
		t.Errorf("ActiveDocument = %q", flow.ActiveDocument())
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/model"
)

// DefaultDocumentName stands in when no document has been uploaded in
// this session; the server records it verbatim in saved queries.
const DefaultDocumentName = "Current Document"

// DuplicateNotice is shown when the server already holds the document.
const DuplicateNotice = "This document was already uploaded (duplicate detected)"

// SuggestQuestion proposes a first question about a freshly uploaded
// document.
func SuggestQuestion(filename string) string {
	return "What is the main topic of " + filename + "?"
}

// =============================================================================
// OUTCOMES
// =============================================================================

// OutcomeKind classifies how an upload ended.
type OutcomeKind int

const (
	// OutcomeSuccess means the server ingested the document.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeDuplicate means the server already had the document.
	OutcomeDuplicate
	// OutcomeFailure means the upload failed.
	OutcomeFailure
	// OutcomeSkipped means another upload was already in flight.
	OutcomeSkipped
)

// Outcome is the result of one upload attempt.
type Outcome struct {
	Kind     OutcomeKind
	Filename string

	// Notice is a user-facing message for duplicate and failure
	// outcomes.
	Notice string

	// SuggestedQuestion is set on success so the UI can prefill the
	// input when it is empty.
	SuggestedQuestion string

	// Err holds the underlying error for failures.
	Err error
}

// =============================================================================
// UPLOAD FLOW
// =============================================================================

// uploader is the slice of the API client the flow needs.
type uploader interface {
	UploadDocument(ctx context.Context, filename string, content io.Reader) (*api.UploadResult, error)
}

// Flow runs uploads and tracks the session's recent documents.
type Flow struct {
	mu        sync.Mutex
	client    uploader
	logger    *zap.Logger
	uploading bool
	documents []model.UploadedDocument
	now       func() time.Time
}

// NewFlow creates an upload flow backed by the given client.
func NewFlow(client uploader, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

// Uploading reports whether an upload is in flight.
func (f *Flow) Uploading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploading
}

// Upload sends a document to the server and returns the outcome. While
// one upload is in flight further calls return OutcomeSkipped.
func (f *Flow) Upload(ctx context.Context, filename string, content io.Reader) Outcome {
	f.mu.Lock()
	if f.uploading {
		f.mu.Unlock()
		return Outcome{Kind: OutcomeSkipped, Filename: filename, Notice: "An upload is already in progress"}
	}
	f.uploading = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.uploading = false
		f.mu.Unlock()
	}()

	result, err := f.client.UploadDocument(ctx, filename, content)
	if err != nil {
		if errors.Is(err, api.ErrDuplicateDocument) {
			// Already on the server: usable for questions, so it still
			// joins the recent list.
			f.remember(filename)
			return Outcome{Kind: OutcomeDuplicate, Filename: filename, Notice: DuplicateNotice}
		}
		f.logger.Warn("upload failed", zap.String("filename", filename), zap.Error(err))
		return Outcome{Kind: OutcomeFailure, Filename: filename, Notice: err.Error(), Err: err}
	}

	name := result.Filename
	if name == "" {
		name = filename
	}
	f.remember(name)
	return Outcome{
		Kind:              OutcomeSuccess,
		Filename:          name,
		SuggestedQuestion: SuggestQuestion(name),
	}
}

func (f *Flow) remember(filename string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.documents = append(f.documents, model.UploadedDocument{
		Filename:   filename,
		UploadTime: f.now(),
	})
}

// Recent returns up to n of the newest documents, newest first.
func (f *Flow) Recent(n int) []model.UploadedDocument {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n > len(f.documents) {
		n = len(f.documents)
	}
	out := make([]model.UploadedDocument, 0, n)
	for i := len(f.documents) - 1; i >= len(f.documents)-n; i-- {
		out = append(out, f.documents[i])
	}
	return out
}

// Documents returns the session's recent documents, oldest first.
func (f *Flow) Documents() []model.UploadedDocument {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]model.UploadedDocument, len(f.documents))
	copy(out, f.documents)
	return out
}

// ActiveDocument returns the newest uploaded document's filename, or
// DefaultDocumentName when nothing has been uploaded this session.
func (f *Flow) ActiveDocument() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.documents) == 0 {
		return DefaultDocumentName
	}
	return f.documents[len(f.documents)-1].Filename
}

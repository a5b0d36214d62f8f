// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/regguru-tui/internal/api"
	"github.com/jeranaias/regguru-tui/internal/model"
	"github.com/jeranaias/regguru-tui/internal/upload"
)

// =============================================================================
// CHAT COMMANDS
// =============================================================================

// sendChatCmd asks the server the question and tags the result with the
// session key and send sequence it belongs to.
func sendChatCmd(client *api.Client, sessionKey string, seq uint64, text string) tea.Cmd {
	return func() tea.Msg {
		answer, err := client.Chat(context.Background(), text)
		return ChatResultMsg{
			SessionKey: sessionKey,
			Seq:        seq,
			Question:   text,
			Answer:     answer,
			Err:        err,
		}
	}
}

// saveQueryCmd persists a completed exchange to the server's history.
func saveQueryCmd(client *api.Client, question, answer, document string) tea.Cmd {
	return func() tea.Msg {
		err := client.SaveQuery(context.Background(), api.SaveQueryRequest{
			Question: question,
			Answer:   answer,
			Document: document,
		})
		return QuerySavedMsg{Err: err}
	}
}

// =============================================================================
// UPLOAD COMMANDS
// =============================================================================

// uploadCmd reads a local file and runs it through the upload flow.
func uploadCmd(flow *upload.Flow, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return UploadResultMsg{Outcome: upload.Outcome{
				Kind:     upload.OutcomeFailure,
				Filename: filepath.Base(path),
				Notice:   "Cannot read " + path,
				Err:      err,
			}}
		}
		defer f.Close()

		outcome := flow.Upload(context.Background(), filepath.Base(path), f)
		return UploadResultMsg{Outcome: outcome}
	}
}

// =============================================================================
// DOCUMENT AND CONNECTIVITY COMMANDS
// =============================================================================

// loadDocumentsCmd fetches the server's document inventory.
func loadDocumentsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		records, err := client.ListDocuments(context.Background())
		if err != nil {
			return DocumentsLoadedMsg{Err: err}
		}
		docs := make([]model.UploadedDocument, 0, len(records))
		for _, rec := range records {
			doc := model.UploadedDocument{Filename: rec.Filename}
			if ts := model.ParseAPITimestamp(rec.UploadTime); !ts.IsZero() {
				doc.UploadTime = ts
			}
			docs = append(docs, doc)
		}
		return DocumentsLoadedMsg{Documents: docs}
	}
}

// pingCmd checks whether the server is reachable.
func pingCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		err := client.Ping(context.Background())
		return PingResultMsg{Connected: err == nil, Err: err}
	}
}

// feedbackCmd logs a thumbs up/down rating for the last exchange.
func feedbackCmd(client *api.Client, question, answer, rating string) tea.Cmd {
	return func() tea.Msg {
		err := client.LogFeedback(context.Background(), api.FeedbackRequest{
			Query:    question,
			Response: answer,
			Rating:   rating,
		})
		return FeedbackLoggedMsg{Rating: rating, Err: err}
	}
}

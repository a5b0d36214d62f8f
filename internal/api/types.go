// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// REQUEST / RESPONSE TYPES
// =============================================================================

// ChatMessage is the inner message object of a chat request.
type ChatMessage struct {
	Text string `json:"text"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message ChatMessage `json:"message"`
}

// ChatResponse is the body of a successful chat reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// SaveQueryRequest is the body of POST /api/save_query. Document should
// carry the active document's filename; the server substitutes
// "Current Document" when it is empty.
type SaveQueryRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Document string `json:"document"`
}

// SavedQueryRecord is one entry of GET /api/get_queries. Timestamp is
// the server's local-time ISO 8601 string without a zone offset, so it
// stays a string here and is parsed by the model package.
type SavedQueryRecord struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
	Document  string `json:"document"`
}

// DocumentRecord is one entry of GET /api/get_documents.
type DocumentRecord struct {
	Filename   string `json:"filename"`
	Hash       string `json:"hash,omitempty"`
	UploadTime string `json:"upload_time"`
}

// UploadResult is the body of a successful document upload.
type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// Feedback ratings accepted by the server.
const (
	RatingThumbsUp   = "thumbs_up"
	RatingThumbsDown = "thumbs_down"
)

// FeedbackRequest is the body of POST /api/log_feedback.
type FeedbackRequest struct {
	Query    string `json:"query"`
	Response string `json:"response"`
	Rating   string `json:"rating"`
	Comments string `json:"comments"`
}

// apiErrorResponse is the server's error envelope.
type apiErrorResponse struct {
	Error string `json:"error"`
}

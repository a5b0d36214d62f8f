// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Configuration constants for the Reg-Guru API.
const (
	// DefaultBaseURL is the development server address.
	DefaultBaseURL = "http://127.0.0.1:5000"

	// DefaultTimeout is the default timeout for API requests. Chat
	// answers can take a while behind a retrieval pipeline.
	DefaultTimeout = 120 * time.Second

	// retryBaseDelay is the base delay for exponential backoff.
	retryBaseDelay = 500 * time.Millisecond

	// retryMaxDelay is the maximum delay for exponential backoff.
	retryMaxDelay = 10 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// Client is a client for communicating with the Reg-Guru API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
	maxRetries int
	userAgent  string
}

// NewClient creates a new client for the given base URL. An empty URL
// selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: zap.NewNop(),
		// The server runs the Q&A chain inline, so be polite: small
		// burst, a few requests per second.
		limiter:    rate.NewLimiter(rate.Limit(5), 5),
		maxRetries: 0,
		userAgent:  "regguru/0.1.0",
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithLogger sets the diagnostic logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// WithMaxRetries sets the number of retries for transient failures.
func (c *Client) WithMaxRetries(maxRetries int) *Client {
	c.maxRetries = maxRetries
	return c
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// Chat sends a question to the server and returns the bot's answer.
func (c *Client) Chat(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ClientError{Type: ErrorTypeUnknown, Message: "empty message"}
	}

	reqBody := ChatRequest{Message: ChatMessage{Text: text}}
	var chatResp ChatResponse
	if err := c.postJSON(ctx, "/api/chat", reqBody, &chatResp); err != nil {
		return "", err
	}
	return chatResp.Response, nil
}

// SaveQuery records an answered question in the server-side history.
func (c *Client) SaveQuery(ctx context.Context, req SaveQueryRequest) error {
	return c.postJSON(ctx, "/api/save_query", req, nil)
}

// ListQueries returns the server-side history of answered questions.
func (c *Client) ListQueries(ctx context.Context) ([]SavedQueryRecord, error) {
	var queries []SavedQueryRecord
	if err := c.getJSON(ctx, "/api/get_queries", &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

// ListDocuments returns the documents known to the server.
func (c *Client) ListDocuments(ctx context.Context) ([]DocumentRecord, error) {
	var docs []DocumentRecord
	if err := c.getJSON(ctx, "/api/get_documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument sends a document to the server for ingestion. A server
// that already holds an identical file answers 409, surfaced here as
// ErrDuplicateDocument.
func (c *Client) UploadDocument(ctx context.Context, filename string, content io.Reader) (*UploadResult, error) {
	if filename == "" {
		return nil, &ClientError{Type: ErrorTypeUnknown, Message: "empty file name"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &ClientError{Type: ErrorTypeUnknown, Message: "failed to build upload form", Cause: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, &ClientError{Type: ErrorTypeUnknown, Message: "failed to read document", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &ClientError{Type: ErrorTypeUnknown, Message: "failed to finalize upload form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload_document", &buf)
	if err != nil {
		return nil, &ClientError{Type: ErrorTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ClientError{Type: ErrorTypeInvalidResponse, Message: "failed to parse upload response", Cause: err}
	}
	return &result, nil
}

// LogFeedback records a thumbs up/down rating for an answer.
func (c *Client) LogFeedback(ctx context.Context, req FeedbackRequest) error {
	if req.Rating != RatingThumbsUp && req.Rating != RatingThumbsDown {
		return &ClientError{Type: ErrorTypeUnknown, Message: fmt.Sprintf("invalid rating %q", req.Rating)}
	}
	return c.postJSON(ctx, "/api/log_feedback", req, nil)
}

// Ping checks server reachability via the test endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/api/test", nil)
}

// =============================================================================
// TRANSPORT
// =============================================================================

// postJSON marshals reqBody, posts it, and optionally decodes the
// response into out.
func (c *Client) postJSON(ctx context.Context, path string, reqBody, out interface{}) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return &ClientError{Type: ErrorTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return &ClientError{Type: ErrorTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{Type: ErrorTypeInvalidResponse, Message: "failed to parse response", Cause: err}
	}
	return nil
}

// getJSON performs a GET request and optionally decodes the response
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &ClientError{Type: ErrorTypeUnknown, Message: "failed to create request", Cause: err}
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{Type: ErrorTypeInvalidResponse, Message: "failed to parse response", Cause: err}
	}
	return nil
}

// do executes a request with rate limiting and retry for transient
// failures, and returns the response body of a 2xx reply.
func (c *Client) do(req *http.Request) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := calculateBackoff(attempt - 1)
			select {
			case <-req.Context().Done():
				return nil, mapTransportError(req.Context().Err())
			case <-time.After(delay):
			}
		}

		body, err := c.doOnce(req)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
		c.logger.Warn("retrying request",
			zap.String("path", req.URL.Path),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return nil, lastErr
}

// doOnce executes a single attempt.
func (c *Client) doOnce(req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, mapTransportError(err)
	}

	// Requests carry a fresh ID per attempt for server-side correlation.
	attempt := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, &ClientError{Type: ErrorTypeUnknown, Message: "failed to rewind request body", Cause: err}
		}
		attempt.Body = body
	}
	attempt.Header.Set("User-Agent", c.userAgent)
	attempt.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(attempt)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleErrorResponse(resp.StatusCode, body)
	}
	return body, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, &ClientError{Type: ErrorTypeInvalidResponse, Message: "failed to read response", Cause: err}
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, &ClientError{
			Type:    ErrorTypeInvalidResponse,
			Message: fmt.Sprintf("response exceeded maximum size of %d bytes", MaxResponseSize),
		}
	}
	return body, nil
}

// handleErrorResponse converts HTTP error responses to client errors.
func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	message := ""
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		message = apiErr.Error
	}

	if statusCode == http.StatusConflict {
		if message == "" {
			message = ErrDuplicateDocument.Message
		}
		return &ClientError{Type: ErrorTypeDuplicate, Message: message, StatusCode: statusCode}
	}

	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &ClientError{Type: ErrorTypeStatus, Message: message, StatusCode: statusCode}
}

// mapTransportError classifies network-level failures.
func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrorTypeTimeout, Message: "request timed out", Cause: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return &ClientError{Type: ErrorTypeTimeout, Message: "request timed out", Cause: err}
		}
		return &ClientError{Type: ErrorTypeConnection, Message: "server unreachable", Cause: err}
	}

	if errors.Is(err, context.Canceled) {
		return &ClientError{Type: ErrorTypeUnknown, Message: "request canceled", Cause: err}
	}
	return &ClientError{Type: ErrorTypeConnection, Message: "server unreachable", Cause: err}
}

// calculateBackoff returns the delay to wait before the next retry.
func calculateBackoff(attempt int) time.Duration {
	delay := retryBaseDelay * time.Duration(1<<uint(attempt))
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay
}

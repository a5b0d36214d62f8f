// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors so callers can choose how to
// present them without string matching.
type ErrorType int

const (
	// ErrorTypeUnknown is an uncategorized error.
	ErrorTypeUnknown ErrorType = iota

	// ErrorTypeConnection indicates the server could not be reached.
	ErrorTypeConnection

	// ErrorTypeTimeout indicates the request exceeded its deadline.
	ErrorTypeTimeout

	// ErrorTypeStatus indicates a non-2xx HTTP response.
	ErrorTypeStatus

	// ErrorTypeInvalidResponse indicates an unparseable response body.
	ErrorTypeInvalidResponse

	// ErrorTypeDuplicate indicates the uploaded document already exists.
	ErrorTypeDuplicate
)

// String returns a human-readable name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeConnection:
		return "connection"
	case ErrorTypeTimeout:
		return "timeout"
	case ErrorTypeStatus:
		return "status"
	case ErrorTypeInvalidResponse:
		return "invalid_response"
	case ErrorTypeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// ClientError represents an error from the Reg-Guru API client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("regguru api: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return "regguru api: " + e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches client errors by type, so sentinel comparisons work with
// errors.Is regardless of message detail.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// Sentinel errors for common failure categories.
// Use errors.Is(err, api.Err...) to check for these.
var (
	// ErrUnreachable indicates the server could not be reached.
	ErrUnreachable = &ClientError{Type: ErrorTypeConnection, Message: "server unreachable"}

	// ErrTimeout indicates the request timed out.
	ErrTimeout = &ClientError{Type: ErrorTypeTimeout, Message: "request timed out"}

	// ErrDuplicateDocument indicates the document already exists on the
	// server. The upload flow treats this as a soft failure.
	ErrDuplicateDocument = &ClientError{Type: ErrorTypeDuplicate, Message: "document already exists"}
)

// IsRetryable reports whether the error is worth retrying.
func IsRetryable(err error) bool {
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		return false
	}
	switch clientErr.Type {
	case ErrorTypeConnection, ErrorTypeTimeout:
		return true
	case ErrorTypeStatus:
		return clientErr.StatusCode >= 500 && clientErr.StatusCode < 600
	default:
		return false
	}
}

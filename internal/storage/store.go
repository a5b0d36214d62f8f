// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// =============================================================================
// STORAGE PORT
// =============================================================================

// Store is the persistence port for client-side state. Implementations
// must treat values as opaque bytes and keys as flat strings.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrKeyNotFound is returned when a key has no stored value.
// Use errors.Is(err, ErrKeyNotFound) to check for this error.
var ErrKeyNotFound = &StoreError{Message: "key not found"}

// StoreError represents a storage-related error.
type StoreError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

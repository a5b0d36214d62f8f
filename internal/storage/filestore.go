// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/regguru-tui/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists each key as a JSON file in a base directory.
// Default location: ~/.regguru/sessions/
type FileStore struct {
	// BaseDir is the directory holding one file per key.
	BaseDir string
}

// NewFileStore creates a file store rooted in the user's home directory.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, &StoreError{Message: "failed to locate home directory", Cause: err}
	}
	return NewFileStoreWithDir(filepath.Join(homeDir, ".regguru", "sessions"))
}

// NewFileStoreWithDir creates a file store with a custom directory.
func NewFileStoreWithDir(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, &StoreError{Message: "failed to create storage directory", Cause: err}
	}
	return &FileStore{BaseDir: baseDir}, nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, &StoreError{Message: "failed to read value", Cause: err}
	}
	return data, nil
}

// Set writes the value for key. The write is atomic with fsync so a
// crash never leaves a partially written log on disk.
func (s *FileStore) Set(key string, value []byte) error {
	if err := util.AtomicWriteFile(s.filePath(key), value, 0644); err != nil {
		return &StoreError{Message: "failed to write value", Cause: err}
	}
	return nil
}

// Delete removes the value for key. Absent keys are not an error.
func (s *FileStore) Delete(key string) error {
	if err := os.Remove(s.filePath(key)); err != nil && !os.IsNotExist(err) {
		return &StoreError{Message: "failed to delete value", Cause: err}
	}
	return nil
}

// Keys lists all stored keys, in directory order.
func (s *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StoreError{Message: "failed to list keys", Cause: err}
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return keys, nil
}

// filePath maps a key to its on-disk location. Path separators in keys
// are flattened so a key can never escape the base directory.
func (s *FileStore) filePath(key string) string {
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	key = strings.ReplaceAll(key, "/", "_")
	return filepath.Join(s.BaseDir, key+".json")
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// =============================================================================
// SQLITE STORE
// =============================================================================

// SQLiteStore persists all keys in a single SQLite database file.
// Selected with storage backend "sqlite" in the config; useful when one
// file is preferable to a directory of per-session JSON files.
// Default location: ~/.regguru/regguru.db
type SQLiteStore struct {
	db *sql.DB

	// Path is the database file backing this store.
	Path string
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
);
`

// OpenSQLiteStore opens (or creates) the database at path. An empty
// path selects the default location in the user's home directory; it
// must never reach sql.Open, where SQLite would treat it as a private
// temporary database discarded on close.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, &StoreError{Message: "failed to locate home directory", Cause: err}
		}
		path = filepath.Join(homeDir, ".regguru", "regguru.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &StoreError{Message: "failed to create storage directory", Cause: err}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StoreError{Message: "failed to open database", Cause: err}
	}

	// The TUI is the only writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, &StoreError{Message: "failed to initialize schema", Cause: err}
	}

	return &SQLiteStore{db: db, Path: path}, nil
}

// Get returns the stored value for key.
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, &StoreError{Message: "failed to read value", Cause: err}
	}
	return value, nil
}

// Set writes the value for key, replacing any previous value.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return &StoreError{Message: "failed to write value", Cause: err}
	}
	return nil
}

// Delete removes the value for key.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &StoreError{Message: "failed to delete value", Cause: err}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

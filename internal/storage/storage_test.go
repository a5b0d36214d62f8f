// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storesUnderTest builds each adapter fresh for the shared conformance
// tests.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStoreWithDir(t.TempDir())
	require.NoError(t, err)

	sqliteStore, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "regguru.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"mem":    NewMemStore(),
		"sqlite": sqliteStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("chat-123-messages", []byte(`[{"id":1}]`)))

			got, err := store.Get("chat-123-messages")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":1}]`, string(got))
		})
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get("no-such-key")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("first")))
			require.NoError(t, store.Set("k", []byte("second")))

			got, err := store.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "second", string(got))
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("v")))
			require.NoError(t, store.Delete("k"))

			_, err := store.Get("k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// Deleting again must not error.
			assert.NoError(t, store.Delete("k"))
		})
	}
}

func TestFileStoreKeySanitization(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStoreWithDir(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("../escape", []byte("v")))

	// The file must land inside the base directory.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, err := store.Get("../escape")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestFileStoreKeys(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"chat-1-messages", "chat-2-messages"} {
		require.NoError(t, store.Set(key, []byte("[]")))
	}

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestSQLiteStoreEmptyPathUsesDefaultFile(t *testing.T) {
	// An empty path must resolve to ~/.regguru/regguru.db, never reach
	// sql.Open verbatim: SQLite reads an empty filename as a private
	// temporary database that vanishes on close.
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenSQLiteStore("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".regguru", "regguru.db"), store.Path)

	require.NoError(t, store.Set("chat-1-messages", []byte("[]")))
	require.NoError(t, store.Close())

	// The data must survive a reopen at the same default location.
	reopened, err := OpenSQLiteStore("")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("chat-1-messages")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	_, err = os.Stat(filepath.Join(home, ".regguru", "regguru.db"))
	assert.NoError(t, err)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regguru.db")

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("k", []byte("durable")))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "durable", string(got))
}

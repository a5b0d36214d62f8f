// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the global configuration when the config file changes
// on disk, so a running TUI picks up edits without a restart.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onReload func(*Config)
	done     chan struct{}
}

// Watch starts watching the default config file. onReload is called with
// the freshly loaded config after each successful reload; it may be nil.
func Watch(onReload func(*Config)) (*Watcher, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return WatchPath(path, onReload)
}

// WatchPath starts watching a specific config file path.
func WatchPath(path string, onReload func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace files via
	// rename, which drops a file-level watch.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.run(filepath.Base(path))
	return w, nil
}

// run processes filesystem events until Close is called. Rapid event
// bursts (editor save patterns) are debounced into a single reload.
func (w *Watcher) run(fileName string) {
	var debounce *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, func() {
				if err := ReloadGlobal(); err != nil {
					return
				}
				if w.onReload != nil {
					w.onReload(Global())
				}
			})

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

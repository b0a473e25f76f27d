// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// INPUT DIRECTORY WATCHER
// =============================================================================

// DirWatcher watches the input directory and republishes its listing after
// changes settle. Events are debounced so a burst of writes (an editor save,
// a bulk copy) produces one notification rather than one per event.
type DirWatcher struct {
	dir      string
	debounce time.Duration
	onChange func([]FileEntry)

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	dirtyAt time.Time
	dirty   bool
}

// NewDirWatcher creates a watcher for dir. onChange is invoked from a
// background goroutine with the fresh listing each time the directory
// settles.
func NewDirWatcher(dir string, debounce time.Duration, onChange func([]FileEntry)) (*DirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &DirWatcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		watcher:  watcher,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. It returns once the directory is registered; event
// handling runs in background goroutines until Close.
func (w *DirWatcher) Watch() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *DirWatcher) Close() error {
	w.cancel()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *DirWatcher) processEvents() {
	defer func() {
		// A panic here must not take down the TUI.
		recover()
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
			if event.Op&relevant != 0 {
				w.markDirty()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next manual refresh catches up.
		}
	}
}

func (w *DirWatcher) markDirty() {
	w.mu.Lock()
	w.dirty = true
	w.dirtyAt = time.Now()
	w.mu.Unlock()
}

func (w *DirWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			fire := w.dirty && time.Since(w.dirtyAt) >= w.debounce
			if fire {
				w.dirty = false
			}
			w.mu.Unlock()

			if fire {
				if files, err := ListInputFiles(w.dir); err == nil {
					w.onChange(files)
				}
			}
		}
	}
}

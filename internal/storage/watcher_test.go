// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestDirWatcherNotifiesAfterSettle(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var last []FileEntry
	notified := make(chan struct{}, 8)

	w, err := NewDirWatcher(dir, 50*time.Millisecond, func(files []FileEntry) {
		mu.Lock()
		last = files
		mu.Unlock()
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("ADFGVX"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("no notification after file creation")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(last) != 1 || last[0].Name != "new.txt" {
		t.Errorf("listing = %+v", last)
	}
}

func TestDirWatcherCloseStops(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDirWatcher(dir, 10*time.Millisecond, func([]FileEntry) {})
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Closing twice must not panic.
	w.cancel()
}

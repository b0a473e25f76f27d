// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestLedger(t *testing.T, maxRuns int) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "history.db"), maxRuns)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLedger(t, 0)
	ctx := context.Background()

	id, err := l.Record(ctx, Run{
		Direction:      "encrypt",
		StartedAt:      time.Now(),
		Duration:       120 * time.Millisecond,
		KeyLength:      6,
		FilesProcessed: 3,
		FilesFailed:    1,
		BytesOut:       4096,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if id == "" {
		t.Fatal("Record returned empty id")
	}

	runs, err := l.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	r := runs[0]
	if r.ID != id {
		t.Errorf("id = %q, want %q", r.ID, id)
	}
	if r.Direction != "encrypt" {
		t.Errorf("direction = %q", r.Direction)
	}
	if r.KeyLength != 6 || r.FilesProcessed != 3 || r.FilesFailed != 1 || r.BytesOut != 4096 {
		t.Errorf("run fields = %+v", r)
	}
	if r.Duration != 120*time.Millisecond {
		t.Errorf("duration = %v", r.Duration)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	l := openTestLedger(t, 0)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := l.Record(ctx, Run{
			Direction: "decrypt",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			KeyLength: 5,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := l.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].StartedAt.After(runs[i-1].StartedAt) {
			t.Error("runs not ordered newest first")
		}
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	l := openTestLedger(t, 2)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		_, err := l.Record(ctx, Run{
			Direction: "encrypt",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			KeyLength: 6,
		})
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	n, err := l.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count after prune = %d, want 2", n)
	}

	runs, err := l.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	// The two newest must have survived.
	if !runs[0].StartedAt.After(runs[1].StartedAt.Add(-time.Second)) {
		t.Errorf("unexpected survivors: %+v", runs)
	}
}

func TestClosedLedger(t *testing.T) {
	l := openTestLedger(t, 0)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ctx := context.Background()
	if _, err := l.Record(ctx, Run{}); err != ErrClosed {
		t.Errorf("Record on closed ledger: %v", err)
	}
	if _, err := l.Recent(ctx, 5); err != ErrClosed {
		t.Errorf("Recent on closed ledger: %v", err)
	}
	// Double close is fine.
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

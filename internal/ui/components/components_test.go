// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/adfgvx-tui/internal/storage"
	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
)

func init() {
	// Plain output keeps assertions free of escape sequences.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "----------"},
		{50, "#####-----"},
		{100, "##########"},
		{150, "##########"},
		{-10, "----------"},
	}
	for _, tt := range tests {
		if got := renderBar(10, tt.percent); got != tt.want {
			t.Errorf("renderBar(10, %v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
	if renderBar(0, 50) != "" {
		t.Error("zero width bar not empty")
	}
}

func TestBatchProgressAdvance(t *testing.T) {
	p := NewBatchProgress("encrypt", 4)
	p.Advance(2, 4, "orders.txt")

	if p.Percent() != 50 {
		t.Errorf("Percent = %v, want 50", p.Percent())
	}

	out := p.Render(styles.NewTheme("dark"))
	if !strings.Contains(out, "2 of 4") {
		t.Errorf("render missing counter: %q", out)
	}
	if !strings.Contains(out, "orders.txt") {
		t.Errorf("render missing current file: %q", out)
	}
}

func TestFileListRender(t *testing.T) {
	f := NewFileList("/tmp/in")
	f.SetEntries([]storage.FileEntry{
		{Name: "alpha.txt", Size: 100},
		{Name: "beta.txt", Size: 2048},
	})

	out := f.Render(styles.NewTheme("dark"))
	if !strings.Contains(out, "Input files (2)") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "alpha.txt") || !strings.Contains(out, "beta.txt") {
		t.Errorf("missing entries: %q", out)
	}
}

func TestFileListCapsVisibleEntries(t *testing.T) {
	f := NewFileList("/tmp/in")
	var entries []storage.FileEntry
	for i := 0; i < maxVisibleFiles+5; i++ {
		entries = append(entries, storage.FileEntry{Name: "f.txt", Size: 1})
	}
	f.SetEntries(entries)

	out := f.Render(styles.NewTheme("dark"))
	if !strings.Contains(out, "and 5 more") {
		t.Errorf("missing overflow note: %q", out)
	}
}

func TestHeaderShowsKeyLengthOnly(t *testing.T) {
	h := NewHeader("1.0.0")
	h.KeyLength = 6

	out := h.Render(styles.NewTheme("dark"))
	if !strings.Contains(out, "6 chars") {
		t.Errorf("missing key length: %q", out)
	}
	if strings.Contains(out, "GERMAN") {
		t.Error("header leaked key material")
	}
}

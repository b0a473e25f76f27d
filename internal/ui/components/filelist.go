// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/jeranaias/adfgvx-tui/internal/storage"
	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// =============================================================================
// FILE LIST COMPONENT
// =============================================================================

// maxVisibleFiles caps the panel height so large directories stay readable.
const maxVisibleFiles = 12

// FileList shows the files currently waiting in the input directory.
// The directory watcher refreshes Entries while the panel is on screen.
type FileList struct {
	Dir     string
	Entries []storage.FileEntry
	Width   int
}

// NewFileList creates a file list panel for the given directory.
func NewFileList(dir string) *FileList {
	return &FileList{Dir: dir, Width: 60}
}

// SetEntries replaces the listing, normally from a watcher notification.
func (f *FileList) SetEntries(entries []storage.FileEntry) {
	f.Entries = entries
}

// Render renders the boxed file listing.
func (f *FileList) Render(theme *styles.Theme) string {
	var b strings.Builder

	title := fmt.Sprintf("Input files (%d)", len(f.Entries))
	b.WriteString(theme.FileListTitle.Render(title))
	b.WriteString("\n")

	if f.Dir == "" {
		b.WriteString(theme.FileMeta.Render("no input directory configured"))
		return theme.FileListBox.Width(f.Width).Render(b.String())
	}
	if len(f.Entries) == 0 {
		b.WriteString(theme.FileMeta.Render("directory is empty"))
		return theme.FileListBox.Width(f.Width).Render(b.String())
	}

	nameWidth := f.Width - 14
	if nameWidth < 10 {
		nameWidth = 10
	}

	shown := f.Entries
	if len(shown) > maxVisibleFiles {
		shown = shown[:maxVisibleFiles]
	}
	for _, e := range shown {
		name := util.TruncateWidth(e.Name, nameWidth)
		size := util.FormatBytes(e.Size)
		b.WriteString(theme.FileName.Render(util.PadRight(name, nameWidth)))
		b.WriteString(theme.FileMeta.Render(" " + size))
		b.WriteString("\n")
	}
	if hidden := len(f.Entries) - len(shown); hidden > 0 {
		b.WriteString(theme.FileMeta.Render(fmt.Sprintf("... and %d more", hidden)))
	}

	return theme.FileListBox.Width(f.Width).Render(strings.TrimRight(b.String(), "\n"))
}

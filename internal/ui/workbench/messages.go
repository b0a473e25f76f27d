// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive batch view for the TUI.
package workbench

import (
	"github.com/jeranaias/adfgvx-tui/internal/batch"
	"github.com/jeranaias/adfgvx-tui/internal/storage"
)

// =============================================================================
// MESSAGES
// =============================================================================

// filesChangedMsg carries a fresh input directory listing, either from the
// initial scan or from a directory watcher notification.
type filesChangedMsg struct {
	entries []storage.FileEntry
}

// progressMsg reports one completed file during a batch run.
type progressMsg struct {
	done  int
	total int
	name  string
}

// runDoneMsg carries the outcome of a finished batch run. Exactly one of
// summary and err is set.
type runDoneMsg struct {
	summary *batch.Summary
	err     error
}

// historySavedMsg reports whether the finished run was recorded in the
// ledger. A failure here is a warning, never a batch failure.
type historySavedMsg struct {
	err error
}

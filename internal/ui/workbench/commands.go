// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive batch view for the TUI.
package workbench

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adfgvx-tui/internal/batch"
	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/history"
	"github.com/jeranaias/adfgvx-tui/internal/storage"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// scanFilesCmd lists the input directory once. A missing or unreadable
// directory yields an empty listing; the prompt validates it separately.
func scanFilesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			return filesChangedMsg{}
		}
		entries, err := storage.ListInputFiles(dir)
		if err != nil {
			return filesChangedMsg{}
		}
		return filesChangedMsg{entries: entries}
	}
}

// waitFilesCmd blocks on the watcher channel and converts notifications
// into messages. It re-arms itself from Update after each delivery.
func waitFilesCmd(ch <-chan []storage.FileEntry) tea.Cmd {
	return func() tea.Msg {
		entries, ok := <-ch
		if !ok {
			return nil
		}
		return filesChangedMsg{entries: entries}
	}
}

// runBatchCmd executes the batch run and reports the outcome. Per-file
// progress flows through progressCh, which is closed when the run ends.
func runBatchCmd(ctx context.Context, dir batch.Direction, inputDir, outputDir, key string, progressCh chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		defer close(progressCh)
		summary, err := batch.Run(ctx, dir, inputDir, outputDir, key, func(done, total int, name string) {
			// RELIABILITY: never block the cipher pass on a slow renderer.
			select {
			case progressCh <- progressMsg{done: done, total: total, name: name}:
			default:
			}
		})
		return runDoneMsg{summary: summary, err: err}
	}
}

// waitProgressCmd delivers the next progress notification, if any.
func waitProgressCmd(ch <-chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return p
	}
}

// recordRunCmd appends the finished run to the history ledger.
func recordRunCmd(cfg *config.Config, summary *batch.Summary) tea.Cmd {
	return func() tea.Msg {
		if !cfg.History.Enabled || summary == nil {
			return historySavedMsg{}
		}
		path, err := cfg.HistoryPath()
		if err != nil {
			return historySavedMsg{err: err}
		}
		ledger, err := history.Open(path, cfg.History.MaxRuns)
		if err != nil {
			return historySavedMsg{err: err}
		}
		defer ledger.Close()
		_, err = ledger.Record(context.Background(), summary.ToRun())
		return historySavedMsg{err: err}
	}
}

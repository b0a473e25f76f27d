// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive batch view for the TUI.
package workbench

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adfgvx-tui/internal/batch"
	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/storage"
	"github.com/jeranaias/adfgvx-tui/internal/ui/components"
	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
)

// =============================================================================
// WORKBENCH STATE
// =============================================================================

// State is the current screen of the workbench.
type State int

const (
	StateMenu        State = iota // Direction menu
	StatePromptInput              // Asking for the input directory
	StatePromptOutput             // Asking for the output directory
	StatePromptKey                // Asking for the transposition key
	StateConfirm                  // Review settings before running
	StateRunning                  // Batch run in flight
	StateResults                  // Run summary
	StateSettings                 // Current settings overview
)

// watchDebounce batches rapid directory changes into one refresh.
const watchDebounce = 500 * time.Millisecond

// menuEntries are the top-level choices, in display order.
var menuEntries = []string{
	"Encrypt files",
	"Decrypt files",
	"View settings",
	"Clear settings",
	"Quit",
}

// =============================================================================
// WORKBENCH MODEL
// =============================================================================

// Model is the Bubble Tea model for the workbench view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme
	keys  KeyMap

	// Dimensions
	width  int
	height int

	// Configuration snapshot taken at startup
	cfg *config.Config

	// UI components
	header   *components.Header
	fileList *components.FileList
	input    textinput.Model
	spin     spinner.Model

	// Menu
	menuIndex int

	// Staged run settings, collected through the prompts
	direction batch.Direction
	inputDir  string
	outputDir string
	key       string

	// Prompt validation failure, shown above the input until it clears
	promptErr error

	// Directory watching
	watcher *storage.DirWatcher
	filesCh chan []storage.FileEntry

	// Running batch
	progress   *components.BatchProgress
	progressCh chan progressMsg
	cancelRun  context.CancelFunc

	// Results
	summary     *batch.Summary
	runErr      error
	historyWarn error

	quitting bool
}

// NewModel creates the workbench model from the loaded configuration.
func NewModel(cfg *config.Config, version string) Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	header := components.NewHeader(version)
	header.KeyLength = len(cfg.Key)

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	m := Model{
		state:     StateMenu,
		theme:     theme,
		keys:      DefaultKeyMap(),
		cfg:       cfg,
		header:    header,
		fileList:  components.NewFileList(cfg.InputDir),
		input:     ti,
		spin:      sp,
		inputDir:  cfg.InputDir,
		outputDir: cfg.OutputDir,
		key:       cfg.Key,
	}

	// Bubble Tea copies the model by value, so the watcher for the
	// configured input dir must be wired here, not in Init.
	m.startWatcher(cfg.InputDir)
	return m
}

// Init starts the spinner, the initial directory scan, and the wait on any
// watcher created at construction.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, scanFilesCmd(m.inputDir)}
	if m.filesCh != nil {
		cmds = append(cmds, waitFilesCmd(m.filesCh))
	}
	return tea.Batch(cmds...)
}

// startWatcher replaces any running directory watcher with one for dir.
// Watch failures are silent; the panel then shows the last scan only.
func (m *Model) startWatcher(dir string) tea.Cmd {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
		m.filesCh = nil
	}
	if dir == "" {
		return nil
	}

	ch := make(chan []storage.FileEntry, 4)
	w, err := storage.NewDirWatcher(dir, watchDebounce, func(entries []storage.FileEntry) {
		// RELIABILITY: drop a refresh rather than block the watcher.
		select {
		case ch <- entries:
		default:
		}
	})
	if err != nil {
		return nil
	}
	if err := w.Watch(); err != nil {
		w.Close()
		return nil
	}

	m.watcher = w
	m.filesCh = ch
	return waitFilesCmd(ch)
}

// Close releases the watcher. Call when the program exits.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

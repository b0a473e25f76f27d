// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive batch view for the TUI.
package workbench

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/adfgvx-tui/internal/batch"
	"github.com/jeranaias/adfgvx-tui/internal/cipher"
	"github.com/jeranaias/adfgvx-tui/internal/ui/components"
)

// =============================================================================
// UPDATE LOOP
// =============================================================================

// Update is the Bubble Tea update function.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.Resize(msg.Width, msg.Height)
		m.header.Width = msg.Width
		m.fileList.Width = min(msg.Width-4, 64)
		if m.progress != nil {
			m.progress.Width = min(msg.Width-4, 64)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case filesChangedMsg:
		m.fileList.SetEntries(msg.entries)
		if m.filesCh != nil {
			return m, waitFilesCmd(m.filesCh)
		}
		return m, nil

	case progressMsg:
		if m.progress != nil {
			m.progress.Advance(msg.done, msg.total, msg.name)
		}
		if m.progressCh != nil {
			return m, waitProgressCmd(m.progressCh)
		}
		return m, nil

	case runDoneMsg:
		return m.finishRun(msg)

	case historySavedMsg:
		m.historyWarn = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey routes key presses by screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits everywhere except mid-run, where it cancels the run.
	if msg.String() == "ctrl+c" && m.state != StateRunning {
		return m.quit()
	}

	switch m.state {
	case StateMenu:
		return m.handleMenuKey(msg)
	case StatePromptInput, StatePromptOutput, StatePromptKey:
		return m.handlePromptKey(msg)
	case StateConfirm:
		return m.handleConfirmKey(msg)
	case StateRunning:
		if key.Matches(msg, m.keys.Cancel) {
			if m.cancelRun != nil {
				m.cancelRun()
			}
			return m, nil
		}
	case StateResults, StateSettings:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
			m.state = StateMenu
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(menuEntries)-1 {
			m.menuIndex++
		}
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Select):
		switch m.menuIndex {
		case 0:
			m.direction = batch.Encrypt
			return m.enterPrompt(StatePromptInput)
		case 1:
			m.direction = batch.Decrypt
			return m.enterPrompt(StatePromptInput)
		case 2:
			m.state = StateSettings
			return m, nil
		case 3:
			return m.clearSettings()
		default:
			return m.quit()
		}
	}
	return m, nil
}

// clearSettings drops the staged run settings, back to a blank slate.
// The saved configuration on disk is untouched.
func (m Model) clearSettings() (tea.Model, tea.Cmd) {
	m.inputDir = ""
	m.outputDir = ""
	m.key = ""
	m.header.KeyLength = 0
	m.fileList.Dir = ""
	m.fileList.SetEntries(nil)
	cmd := m.startWatcher("")
	return m, cmd
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateMenu
		m.promptErr = nil
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.submitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = StateMenu
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.startRun()
	}
	switch msg.String() {
	case "y", "Y":
		return m.startRun()
	case "n", "N":
		m.state = StateMenu
		return m, nil
	}
	return m, nil
}

// =============================================================================
// PROMPT FLOW
// =============================================================================

// enterPrompt moves to a prompt screen and seeds the input with the staged
// value for that setting.
func (m Model) enterPrompt(state State) (tea.Model, tea.Cmd) {
	m.state = state
	m.promptErr = nil
	m.input.EchoMode = textinput.EchoNormal

	switch state {
	case StatePromptInput:
		m.input.Placeholder = "directory with files to process"
		m.input.SetValue(m.inputDir)
	case StatePromptOutput:
		m.input.Placeholder = "directory for results"
		m.input.SetValue(m.outputDir)
	case StatePromptKey:
		// SECURITY: key entry is masked.
		m.input.EchoMode = textinput.EchoPassword
		m.input.Placeholder = "5-16 letters and digits, no repeats"
		m.input.SetValue(m.key)
	}
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// submitPrompt validates the current prompt. An invalid value keeps the
// user on the same screen with the failure shown above the input.
func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.state {
	case StatePromptInput:
		info, err := os.Stat(value)
		if err != nil || !info.IsDir() {
			m.promptErr = fmt.Errorf("not a readable directory: %q", value)
			return m, nil
		}
		m.inputDir = value
		m.promptErr = nil
		cmd := m.startWatcher(value)
		m.fileList.Dir = value
		next, promptCmd := m.enterPrompt(StatePromptOutput)
		return next, tea.Batch(cmd, scanFilesCmd(value), promptCmd)

	case StatePromptOutput:
		if value == "" {
			m.promptErr = errors.New("output directory is required")
			return m, nil
		}
		m.outputDir = value
		m.promptErr = nil
		return m.enterPrompt(StatePromptKey)

	case StatePromptKey:
		if err := cipher.ValidateKey(value); err != nil {
			m.promptErr = err
			return m, nil
		}
		m.key = value
		m.header.KeyLength = len(value)
		m.promptErr = nil
		m.input.Blur()
		m.state = StateConfirm
		return m, nil
	}
	return m, nil
}

// =============================================================================
// RUN LIFECYCLE
// =============================================================================

// startRun launches the batch run and switches to the running screen.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelRun = cancel
	m.progressCh = make(chan progressMsg, 64)
	m.progress = components.NewBatchProgress(string(m.direction), len(m.fileList.Entries))
	if m.width > 20 {
		m.progress.Width = min(m.width-4, 64)
	}
	m.summary = nil
	m.runErr = nil
	m.historyWarn = nil
	m.state = StateRunning

	return m, tea.Batch(
		runBatchCmd(ctx, m.direction, m.inputDir, m.outputDir, m.key, m.progressCh),
		waitProgressCmd(m.progressCh),
		m.spin.Tick,
	)
}

// finishRun records the outcome and switches to the results screen.
func (m Model) finishRun(msg runDoneMsg) (tea.Model, tea.Cmd) {
	if m.cancelRun != nil {
		m.cancelRun()
		m.cancelRun = nil
	}
	m.progressCh = nil
	m.summary = msg.summary
	m.runErr = msg.err
	m.state = StateResults

	if m.summary != nil {
		return m, tea.Batch(recordRunCmd(m.cfg, m.summary), scanFilesCmd(m.inputDir))
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()
	return m, tea.Quit
}

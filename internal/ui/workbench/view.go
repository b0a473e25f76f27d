// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package workbench provides the interactive batch view for the TUI.
package workbench

import (
	"fmt"
	"strings"

	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View is the Bubble Tea view function.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header.Render(m.theme))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StatePromptInput:
		b.WriteString(m.viewPrompt("Input directory", "Files in this directory will be processed."))
	case StatePromptOutput:
		b.WriteString(m.viewPrompt("Output directory", "Results are written here, never over the inputs."))
	case StatePromptKey:
		b.WriteString(m.viewPrompt("Transposition key", "5-16 letters and digits with no repeated characters."))
	case StateConfirm:
		b.WriteString(m.viewConfirm())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateResults:
		b.WriteString(m.viewResults())
	case StateSettings:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewStatusBar())
	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	for i, entry := range menuEntries {
		if i == m.menuIndex {
			b.WriteString(m.theme.MenuItemSelected.Render("> " + entry))
		} else {
			b.WriteString(m.theme.MenuItem.Render("  " + entry))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.fileList.Render(m.theme))
	return b.String()
}

func (m Model) viewPrompt(label, hint string) string {
	var b strings.Builder
	b.WriteString(m.theme.PromptLabel.Render(label))
	b.WriteString("\n")
	b.WriteString(m.theme.PromptHint.Render(hint))
	b.WriteString("\n\n")

	if m.promptErr != nil {
		b.WriteString(m.theme.ErrorBox.Render(
			m.theme.ErrorTitle.Render(styles.StatusIndicators.Error+" invalid value") + "\n" +
				m.theme.ErrorMessage.Render(m.promptErr.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.PromptBox.Render(m.input.View()))
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.theme.PromptLabel.Render("Ready to " + string(m.direction)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.theme.Label.Render(label))
		b.WriteString(m.theme.Value.Render(value))
		b.WriteString("\n")
	}
	row("Input:", m.inputDir)
	row("Output:", m.outputDir)
	// SECURITY: the key is confirmed by length only.
	row("Key:", fmt.Sprintf("%d characters", len(m.key)))
	row("Files:", fmt.Sprint(len(m.fileList.Entries)))

	b.WriteString("\n")
	b.WriteString(m.theme.MenuHint.Render("Enter/y to start, Esc/n to go back"))
	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder
	b.WriteString(m.spin.View())
	b.WriteString(m.theme.ProgressText.Render(" working..."))
	b.WriteString("\n\n")
	if m.progress != nil {
		b.WriteString(m.progress.Render(m.theme))
	}
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	if m.runErr != nil {
		b.WriteString(m.theme.ErrorBox.Render(
			m.theme.ErrorTitle.Render(styles.StatusIndicators.Error+" run failed") + "\n" +
				m.theme.ErrorMessage.Render(m.runErr.Error())))
		b.WriteString("\n\n")
		b.WriteString(m.theme.MenuHint.Render("Enter to return to the menu"))
		return b.String()
	}
	if m.summary == nil {
		return m.theme.Muted.Render("no run recorded")
	}

	s := m.summary
	headline := fmt.Sprintf("%s %s complete", styles.StatusIndicators.Success, s.Direction)
	style := m.theme.ResultOK
	if s.Failed > 0 {
		headline = fmt.Sprintf("%s %s finished with %d failure(s)",
			styles.StatusIndicators.Warning, s.Direction, s.Failed)
		style = m.theme.ResultFail
	}
	b.WriteString(style.Render(headline))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.theme.Label.Render(label))
		b.WriteString(m.theme.Value.Render(value))
		b.WriteString("\n")
	}
	row("Processed:", fmt.Sprint(s.Processed))
	row("Failed:", fmt.Sprint(s.Failed))
	row("Written:", util.FormatBytes(s.BytesOut))
	row("Duration:", util.FormatDuration(s.Duration))

	for _, r := range s.Results {
		if r.Err != nil {
			b.WriteString(m.theme.ResultFail.Render(
				fmt.Sprintf("  %s %s: %v", styles.StatusIndicators.Error, r.Name, r.Err)))
			b.WriteString("\n")
		}
	}

	if m.historyWarn != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render("history not recorded: " + m.historyWarn.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.MenuHint.Render("Enter to return to the menu, q to quit"))
	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.PromptLabel.Render("Current settings"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			value = "(unset)"
		}
		b.WriteString(m.theme.Label.Render(label))
		b.WriteString(m.theme.Value.Render(value))
		b.WriteString("\n")
	}
	row("Input:", m.inputDir)
	row("Output:", m.outputDir)
	keyState := ""
	if m.key != "" {
		// SECURITY: settings show the key length only.
		keyState = fmt.Sprintf("set (%d characters)", len(m.key))
	}
	row("Key:", keyState)
	historyState := "disabled"
	if m.cfg.History.Enabled {
		historyState = "enabled"
	}
	row("History:", historyState)

	b.WriteString("\n")
	b.WriteString(m.theme.MenuHint.Render("Enter/Esc to return to the menu"))
	return b.String()
}

// viewStatusBar renders the shortcut help line for the current screen.
func (m Model) viewStatusBar() string {
	var hints []string
	pair := func(k, desc string) string {
		return m.theme.ShortcutKey.Render(k) + m.theme.ShortcutDesc.Render(" "+desc)
	}

	switch m.state {
	case StateMenu:
		hints = []string{pair("up/down", "move"), pair("enter", "select"), pair("q", "quit")}
	case StatePromptInput, StatePromptOutput, StatePromptKey:
		hints = []string{pair("enter", "accept"), pair("esc", "back")}
	case StateConfirm:
		hints = []string{pair("enter", "start"), pair("esc", "back")}
	case StateRunning:
		hints = []string{pair("ctrl+c", "cancel")}
	case StateResults, StateSettings:
		hints = []string{pair("enter", "menu"), pair("q", "quit")}
	}

	return m.theme.StatusBar.Render(strings.Join(hints, "  "))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the adfgvx TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MENU STYLES
	// ==========================================================================

	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style
	MenuHint         lipgloss.Style

	// ==========================================================================
	// INPUT PROMPT STYLES
	// ==========================================================================

	PromptBox   lipgloss.Style
	PromptLabel lipgloss.Style
	PromptHint  lipgloss.Style

	// ==========================================================================
	// FILE LIST STYLES
	// ==========================================================================

	FileListBox   lipgloss.Style
	FileListTitle lipgloss.Style
	FileName      lipgloss.Style
	FileMeta      lipgloss.Style

	// ==========================================================================
	// RUN AND RESULT STYLES
	// ==========================================================================

	ProgressText lipgloss.Style
	ResultOK     lipgloss.Style
	ResultFail   lipgloss.Style
	Spinner      lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	Label lipgloss.Style
	Value lipgloss.Style
	Muted lipgloss.Style
}

// NewTheme builds the theme for the requested mode. Mode is one of
// "dark", "light", or "auto"; auto asks the terminal.
func NewTheme(mode string) *Theme {
	isDark := true
	switch mode {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	default:
		isDark = lipgloss.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
		Width:        80,
		Height:       24,
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1).
		Width(t.Width)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.MenuItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 2)
	t.MenuItemSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Padding(0, 2)
	t.MenuHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.PromptBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)
	t.PromptLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)
	t.PromptHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FileListBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.FileListTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)
	t.FileName = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.FileMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ProgressText = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.ResultOK = lipgloss.NewStyle().
		Foreground(Emerald)
	t.ResultFail = lipgloss.NewStyle().
		Foreground(Rose)
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ErrorBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(0, 1)
	t.ErrorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)
	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Width(14)
	t.Value = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	return t
}

// Resize records the terminal dimensions and adjusts width-bound styles.
func (t *Theme) Resize(width, height int) {
	if width < 20 {
		width = 20
	}
	t.Width = width
	t.Height = height
	t.Header = t.Header.Width(width)
	t.StatusBar = t.StatusBar.Width(width)
}

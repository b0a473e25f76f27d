// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the adfgvx TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the top bar: application name, version, and the active key state.
type Header struct {
	Version   string
	KeyLength int // 0 when no key is set
	Width     int
}

// NewHeader creates a header for the given version string.
func NewHeader(version string) *Header {
	return &Header{Version: version, Width: 80}
}

// Render renders the header bar.
func (h *Header) Render(theme *styles.Theme) string {
	title := theme.HeaderTitle.Render("ADFGVX")
	subtitle := theme.HeaderSubtitle.Render("v" + h.Version)

	// SECURITY: the key itself never reaches the header, only its length.
	keyState := theme.HeaderSubtitle.Render("key: unset")
	if h.KeyLength > 0 {
		keyState = theme.HeaderSubtitle.Render(fmt.Sprintf("key: %d chars", h.KeyLength))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", subtitle)
	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(keyState) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + keyState

	return theme.Header.Render(line)
}

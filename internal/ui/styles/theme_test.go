// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeModes(t *testing.T) {
	if !NewTheme("dark").IsDark {
		t.Error("dark theme not dark")
	}
	if NewTheme("light").IsDark {
		t.Error("light theme reported dark")
	}
	// Auto must not panic outside a terminal.
	_ = NewTheme("auto")
}

func TestThemeResizeClampsWidth(t *testing.T) {
	theme := NewTheme("dark")
	theme.Resize(5, 10)
	if theme.Width < 20 {
		t.Errorf("Width = %d, want clamped to at least 20", theme.Width)
	}

	theme.Resize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestStatusIndicatorsDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Pending,
	} {
		if s == "" {
			t.Error("empty status indicator")
		}
		if seen[s] {
			t.Errorf("duplicate status indicator %q", s)
		}
		seen[s] = true
	}
}

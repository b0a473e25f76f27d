// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/adfgvx-tui/internal/ui/styles"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// =============================================================================
// BATCH PROGRESS COMPONENT
// =============================================================================

// BatchProgress tracks a running encryption or decryption pass over a
// directory: files done, total, and the file currently being transformed.
type BatchProgress struct {
	Direction   string
	Done        int
	Total       int
	CurrentFile string
	StartedAt   time.Time
	Width       int
}

// NewBatchProgress creates a progress tracker for a batch run.
func NewBatchProgress(direction string, total int) *BatchProgress {
	return &BatchProgress{
		Direction: direction,
		Total:     total,
		StartedAt: time.Now(),
		Width:     60,
	}
}

// Advance records a progress notification from the batch runner.
func (p *BatchProgress) Advance(done, total int, name string) {
	p.Done = done
	p.Total = total
	p.CurrentFile = name
}

// Percent returns completion as 0-100.
func (p *BatchProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// Render renders the boxed progress display.
func (p *BatchProgress) Render(theme *styles.Theme) string {
	var lines []string

	counter := fmt.Sprintf("%s  %d of %d files", p.Direction, p.Done, p.Total)
	lines = append(lines, theme.PromptLabel.Render(counter))

	barWidth := p.Width - 10
	if barWidth < 10 {
		barWidth = 10
	}
	bar := renderBar(barWidth, p.Percent())
	percent := fmt.Sprintf("%3.0f%%", p.Percent())
	lines = append(lines, theme.ProgressText.Render(bar+" "+percent))

	if p.CurrentFile != "" {
		name := util.TruncateWidth(p.CurrentFile, p.Width-4)
		lines = append(lines, theme.Muted.Render(name))
	}

	elapsed := util.FormatDuration(time.Since(p.StartedAt))
	lines = append(lines, theme.Muted.Render("elapsed "+elapsed))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(0, 1).
		Width(p.Width)
	return box.Render(strings.Join(lines, "\n"))
}

// renderBar draws a fixed-width ASCII progress bar.
func renderBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

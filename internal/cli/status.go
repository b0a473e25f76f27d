// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - The status command: effective settings and terminal info.

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/storage"
)

// HandleStatus handles the "status" command.
func HandleStatus(args Args) int {
	cfg := config.Global()

	fmt.Println(TitleStyle.Render("adfgvx status"))

	fmt.Printf("%s%s\n", RenderLabel("Version:"), ValueStyle.Render(Version))
	printDirStatus("Input dir:", cfg.InputDir)
	printDirStatus("Output dir:", cfg.OutputDir)

	if cfg.Key == "" {
		fmt.Printf("%s%s\n", RenderLabel("Key:"), DimStyle.Render("(unset)"))
	} else {
		// SECURITY: show only the length, never the key itself.
		fmt.Printf("%s%s\n", RenderLabel("Key:"),
			ValueStyle.Render(fmt.Sprintf("set (%d characters)", len(cfg.Key))))
	}

	historyState := "disabled"
	if cfg.History.Enabled {
		historyState = "enabled"
	}
	fmt.Printf("%s%s\n", RenderLabel("History:"), ValueStyle.Render(historyState))

	// Input listing, when a directory is configured.
	if cfg.InputDir != "" {
		if files, err := storage.ListInputFiles(cfg.InputDir); err == nil {
			fmt.Printf("%s%s\n", RenderLabel("Input files:"), ValueStyle.Render(fmt.Sprint(len(files))))
		}
	}

	width, height := GetTerminalSize()
	fmt.Printf("%s%s\n", RenderLabel("Terminal:"),
		ValueStyle.Render(fmt.Sprintf("%dx%d, colors %v", width, height, ColorsEnabled())))

	return 0
}

func printDirStatus(label, dir string) {
	if dir == "" {
		fmt.Printf("%s%s\n", RenderLabel(label), DimStyle.Render("(unset)"))
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Printf("%s%s %s\n", RenderLabel(label), ValueStyle.Render(dir), RenderStatus("fail"))
		return
	}
	fmt.Printf("%s%s\n", RenderLabel(label), ValueStyle.Render(dir))
}

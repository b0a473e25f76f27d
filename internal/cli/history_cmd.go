// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - The history command: recent batch runs.

package cli

import (
	"context"
	"fmt"

	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/history"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// HandleHistory handles the "history" command.
//
//	adfgvx history [--limit N]
func HandleHistory(args Args) int {
	parser := NewArgParser(args.Raw)
	limit := parser.FlagIntOrDefault("limit", 20)

	cfg := config.Global()
	path, err := cfg.HistoryPath()
	if err != nil {
		return Fail(err)
	}

	ledger, err := history.Open(path, cfg.History.MaxRuns)
	if err != nil {
		return Fail(err)
	}
	defer ledger.Close()

	runs, err := ledger.Recent(context.Background(), limit)
	if err != nil {
		return Fail(err)
	}

	if len(runs) == 0 {
		fmt.Println(DimStyle.Render("No recorded runs."))
		return 0
	}

	fmt.Println(TitleStyle.Render("Recent runs"))
	for _, r := range runs {
		status := "ok"
		if r.FilesFailed > 0 {
			status = "warn"
		}
		fmt.Printf("%s %s  %-7s  key len %-2d  %d ok / %d failed  %s in %s\n",
			RenderStatus(status),
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Direction,
			r.KeyLength,
			r.FilesProcessed,
			r.FilesFailed,
			util.FormatBytes(r.BytesOut),
			util.FormatDuration(r.Duration))
	}
	return 0
}

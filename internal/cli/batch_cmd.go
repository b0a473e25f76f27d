// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// batch_cmd.go - The encrypt and decrypt commands.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/adfgvx-tui/internal/batch"
	"github.com/jeranaias/adfgvx-tui/internal/config"
	"github.com/jeranaias/adfgvx-tui/internal/history"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// HandleEncrypt handles the "encrypt" command.
func HandleEncrypt(args Args) int {
	return runBatch(batch.Encrypt, args)
}

// HandleDecrypt handles the "decrypt" command.
func HandleDecrypt(args Args) int {
	return runBatch(batch.Decrypt, args)
}

// runBatch resolves directories and key from flags with config fallback,
// runs the batch, prints per-file results, and records the run.
func runBatch(dir batch.Direction, args Args) int {
	if args.MissingValue != "" {
		return Fail(fmt.Errorf("flag --%s is missing a value; use --%s=VALUE for values that start with '-'",
			args.MissingValue, args.MissingValue))
	}

	cfg := config.Global()

	inputDir := args.InputDir
	if inputDir == "" {
		inputDir = cfg.InputDir
	}
	outputDir := args.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	key := args.Key
	if key == "" {
		key = cfg.Key
	}

	switch {
	case inputDir == "":
		return Fail(errors.New("no input directory: pass --in or set input_dir in the config"))
	case outputDir == "":
		return Fail(errors.New("no output directory: pass --out or set output_dir in the config"))
	case key == "":
		return Fail(errors.New("no key: pass --key or set key in the config"))
	}

	var progress batch.ProgressFunc
	if !args.Quiet {
		progress = func(done, total int, name string) {
			fmt.Printf("%s %s (%d/%d)\n", DimStyle.Render("..."), name, done, total)
		}
	}

	summary, err := batch.Run(context.Background(), dir, inputDir, outputDir, key, progress)
	if err != nil {
		return Fail(err)
	}

	printSummary(summary, args.Quiet)
	recordRun(cfg, summary)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

func printSummary(summary *batch.Summary, quiet bool) {
	if quiet {
		fmt.Printf("%d processed, %d failed\n", summary.Processed, summary.Failed)
		return
	}

	fmt.Println()
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Printf("%s %s: %v\n", RenderStatus("fail"), r.Name, r.Err)
		} else {
			fmt.Printf("%s %s -> %s (%s)\n", RenderStatus("ok"), r.Name, r.OutputPath,
				util.FormatBytes(int64(r.BytesOut)))
		}
	}

	fmt.Println()
	line := fmt.Sprintf("%d file(s) processed, %d failed, %s written in %s",
		summary.Processed, summary.Failed,
		util.FormatBytes(summary.BytesOut), util.FormatDuration(summary.Duration))
	if summary.Failed > 0 {
		fmt.Println(WarningStyle.Render(line))
	} else {
		fmt.Println(SuccessStyle.Render(line))
	}
}

// recordRun appends the summary to the history ledger. History failures are
// reported but never fail the batch; the cipher output is already on disk.
func recordRun(cfg *config.Config, summary *batch.Summary) {
	if !cfg.History.Enabled {
		return
	}

	path, err := cfg.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
		return
	}

	ledger, err := history.Open(path, cfg.History.MaxRuns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
		return
	}
	defer ledger.Close()

	if _, err := ledger.Record(context.Background(), summary.ToRun()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record run: %v\n", err)
	}
}

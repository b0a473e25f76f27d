// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package batch runs the cipher over every file in an input directory,
// collecting per-file results for the UI and CLI to render.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/jeranaias/adfgvx-tui/internal/cipher"
	"github.com/jeranaias/adfgvx-tui/internal/history"
	"github.com/jeranaias/adfgvx-tui/internal/storage"
)

// Direction selects which way the batch transforms its files.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// FileResult is the outcome for a single input file. Err is nil on success.
type FileResult struct {
	Name       string
	OutputPath string
	BytesOut   int
	Err        error
}

// Summary aggregates a completed batch run.
type Summary struct {
	Direction Direction
	KeyLength int
	StartedAt time.Time
	Duration  time.Duration
	Results   []FileResult
	Processed int
	Failed    int
	BytesOut  int64
}

// ProgressFunc is called after each file with the running completion count.
type ProgressFunc func(done, total int, name string)

// =============================================================================
// BATCH RUN
// =============================================================================

// Run transforms every regular file in inputDir and writes the results to
// outputDir. It fails fast on an invalid key, an unreadable input directory,
// or (for decryption) a directory containing non-ciphertext files; individual
// file failures are collected in the summary instead of aborting the run.
func Run(ctx context.Context, dir Direction, inputDir, outputDir, key string, progress ProgressFunc) (*Summary, error) {
	if err := cipher.ValidateKey(key); err != nil {
		return nil, err
	}

	if dir == Decrypt {
		if err := storage.ValidateCipherDirectory(inputDir); err != nil {
			return nil, err
		}
	}

	files, err := storage.ListInputFiles(inputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Direction: dir,
		KeyLength: len(key),
		StartedAt: time.Now(),
	}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := processFile(dir, f, outputDir, key)
		summary.Results = append(summary.Results, result)
		if result.Err != nil {
			summary.Failed++
		} else {
			summary.Processed++
			summary.BytesOut += int64(result.BytesOut)
		}

		if progress != nil {
			progress(i+1, len(files), f.Name)
		}
	}

	summary.Duration = time.Since(summary.StartedAt)
	return summary, nil
}

func processFile(dir Direction, f storage.FileEntry, outputDir, key string) FileResult {
	result := FileResult{Name: f.Name}

	var content, transformed, prefix string
	var err error

	switch dir {
	case Encrypt:
		prefix = storage.EncryptedPrefix
		content, err = storage.LoadPlainText(f.Path)
		if err == nil {
			transformed, err = cipher.Encrypt(content, key)
		}
	case Decrypt:
		prefix = storage.DecryptedPrefix
		content, err = storage.LoadCipherText(f.Path)
		if err == nil {
			transformed, err = cipher.Decrypt(content, key)
		}
	default:
		err = fmt.Errorf("unknown direction %q", dir)
	}
	if err != nil {
		result.Err = err
		return result
	}

	path, err := storage.WriteResult(outputDir, prefix, transformed)
	if err != nil {
		result.Err = err
		return result
	}

	result.OutputPath = path
	result.BytesOut = len(transformed)
	return result
}

// =============================================================================
// HISTORY
// =============================================================================

// ToRun converts a summary into its history record.
func (s *Summary) ToRun() history.Run {
	return history.Run{
		Direction:      string(s.Direction),
		StartedAt:      s.StartedAt,
		Duration:       s.Duration,
		KeyLength:      s.KeyLength,
		FilesProcessed: s.Processed,
		FilesFailed:    s.Failed,
		BytesOut:       s.BytesOut,
	}
}

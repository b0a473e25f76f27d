// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage handles the file side of batch cipher runs: scanning the
// input directory, loading and normalizing file content, and writing results
// under unique names in the output directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/adfgvx-tui/internal/textprep"
	"github.com/jeranaias/adfgvx-tui/internal/util"
)

// Result file name prefixes. Output files are named <prefix><N>.txt with the
// first unused counter, so repeated runs never overwrite earlier results.
const (
	EncryptedPrefix = "encrypted"
	DecryptedPrefix = "decrypted"
)

// FileEntry describes one candidate input file.
type FileEntry struct {
	Name string
	Path string
	Size int64
}

// =============================================================================
// INPUT SCANNING
// =============================================================================

// ListInputFiles returns the regular files directly inside dir, sorted by
// name. Subdirectories and irregular entries are skipped.
func ListInputFiles(dir string) ([]FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []FileEntry
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileEntry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// LoadPlainText reads path and normalizes it to the cipher's plaintext
// alphabet.
func LoadPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return textprep.CleanPlain(string(data)), nil
}

// LoadCipherText reads path and strips everything that is not an ADFGVX
// symbol.
func LoadCipherText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return textprep.CleanCipher(string(data)), nil
}

// ValidateCipherDirectory checks that every regular file in dir holds only
// ADFGVX symbols and whitespace. Decryption refuses to start otherwise,
// since feeding plaintext through the decrypt path silently produces
// garbage.
func ValidateCipherDirectory(dir string) error {
	files, err := ListInputFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Path, err)
		}
		if n := textprep.ValidateCipherText(string(data)); n > 0 {
			return fmt.Errorf("%s does not look like ciphertext: %d invalid characters", f.Name, n)
		}
	}
	return nil
}

// =============================================================================
// RESULT WRITING
// =============================================================================

// WriteResult writes content to dir under the first unused <prefix><N>.txt
// name and returns the path it chose. The write is atomic.
func WriteResult(dir, prefix, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := nextUnusedPath(dir, prefix)
	if err != nil {
		return "", err
	}

	if err := util.AtomicWriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write result: %w", err)
	}
	return path, nil
}

// nextUnusedPath finds the lowest counter N >= 1 for which <prefix><N>.txt
// does not exist in dir.
func nextUnusedPath(dir, prefix string) (string, error) {
	for n := 1; ; n++ {
		path := filepath.Join(dir, fmt.Sprintf("%s%d.txt", prefix, n))
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return path, nil
			}
			return "", fmt.Errorf("failed to probe output name: %w", err)
		}
	}
}

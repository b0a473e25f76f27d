// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/adfgvx-tui/internal/cipher"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRunEncrypt(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "one.txt", "attack at dawn")
	writeFile(t, in, "two.txt", "retreat at dusk")

	var progressCalls int
	summary, err := Run(context.Background(), Encrypt, in, out, "GERMAN",
		func(done, total int, name string) {
			progressCalls++
			assert.Equal(t, 2, total)
		})
	require.NoError(t, err)

	assert.Equal(t, Encrypt, summary.Direction)
	assert.Equal(t, 6, summary.KeyLength)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, progressCalls)
	require.Len(t, summary.Results, 2)

	// Outputs exist and contain only cipher symbols.
	for _, r := range summary.Results {
		require.NoError(t, r.Err, r.Name)
		data, err := os.ReadFile(r.OutputPath)
		require.NoError(t, err)
		assert.Equal(t, r.BytesOut, len(data))
		for i := 0; i < len(data); i++ {
			assert.True(t, cipher.IsSymbol(data[i]))
		}
	}
}

func TestRunRoundTrip(t *testing.T) {
	in := t.TempDir()
	mid := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "msg.txt", "ATTACKATDAWN")

	_, err := Run(context.Background(), Encrypt, in, mid, "GERMAN", nil)
	require.NoError(t, err)

	summary, err := Run(context.Background(), Decrypt, mid, out, "GERMAN", nil)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)

	data, err := os.ReadFile(summary.Results[0].OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", string(data))
}

func TestRunInvalidKey(t *testing.T) {
	_, err := Run(context.Background(), Encrypt, t.TempDir(), t.TempDir(), "abc", nil)
	var keyErr *cipher.InvalidKeyError
	require.ErrorAs(t, err, &keyErr)
}

func TestRunDecryptRejectsPlaintextDirectory(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "plain.txt", "THIS IS NOT CIPHERTEXT")

	_, err := Run(context.Background(), Decrypt, in, t.TempDir(), "GERMAN", nil)
	require.Error(t, err)
}

func TestRunCollectsPerFileErrors(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "ok.txt", "HELLO")
	// Unreadable file: load fails but the run continues.
	badPath := filepath.Join(in, "bad.txt")
	require.NoError(t, os.WriteFile(badPath, []byte("x"), 0644))
	require.NoError(t, os.Chmod(badPath, 0000))
	t.Cleanup(func() { os.Chmod(badPath, 0644) })

	summary, err := Run(context.Background(), Encrypt, in, out, "abcde", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.Failed)
}

func TestRunCancelled(t *testing.T) {
	in := t.TempDir()
	writeFile(t, in, "a.txt", "HELLO")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Encrypt, in, t.TempDir(), "GERMAN", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummaryToRun(t *testing.T) {
	s := &Summary{
		Direction: Decrypt,
		KeyLength: 8,
		Processed: 4,
		Failed:    1,
		BytesOut:  1000,
	}
	run := s.ToRun()
	assert.Equal(t, "decrypt", run.Direction)
	assert.Equal(t, 8, run.KeyLength)
	assert.Equal(t, 4, run.FilesProcessed)
	assert.Equal(t, 1, run.FilesFailed)
	assert.Equal(t, int64(1000), run.BytesOut)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestListInputFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "bravo")
	writeFile(t, dir, "a.txt", "alpha")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := ListInputFiles(dir)
	if err != nil {
		t.Fatalf("ListInputFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	// os.ReadDir returns entries sorted by name.
	if files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Errorf("unexpected order: %s, %s", files[0].Name, files[1].Name)
	}
	if files[0].Size != 5 {
		t.Errorf("size = %d, want 5", files[0].Size)
	}
}

func TestListInputFilesMissingDir(t *testing.T) {
	if _, err := ListInputFiles("/nonexistent/dir/for/test"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.txt", "Attack at dawn!\n")

	got, err := LoadPlainText(path)
	if err != nil {
		t.Fatalf("LoadPlainText: %v", err)
	}
	if got != "ATTACKATDAWN" {
		t.Errorf("got %q", got)
	}
}

func TestLoadCipherText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ct.txt", "adfg vx\nADFGVX")

	got, err := LoadCipherText(path)
	if err != nil {
		t.Fatalf("LoadCipherText: %v", err)
	}
	if got != "ADFGVXADFGVX" {
		t.Errorf("got %q", got)
	}
}

func TestValidateCipherDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", "ADFG VX\nadfgvx")

	if err := ValidateCipherDirectory(dir); err != nil {
		t.Errorf("ValidateCipherDirectory: %v", err)
	}

	writeFile(t, dir, "bad.txt", "HELLO WORLD")
	if err := ValidateCipherDirectory(dir); err == nil {
		t.Error("expected error for plaintext in cipher directory")
	}
}

func TestWriteResultUniqueNames(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteResult(dir, EncryptedPrefix, "AAAA")
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if filepath.Base(first) != "encrypted1.txt" {
		t.Errorf("first name = %s", filepath.Base(first))
	}

	second, err := WriteResult(dir, EncryptedPrefix, "BBBB")
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if filepath.Base(second) != "encrypted2.txt" {
		t.Errorf("second name = %s", filepath.Base(second))
	}

	// Earlier results are untouched.
	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "AAAA" {
		t.Errorf("first file content = %q", data)
	}

	// A different prefix has its own counter.
	third, err := WriteResult(dir, DecryptedPrefix, "CCCC")
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	if filepath.Base(third) != "decrypted1.txt" {
		t.Errorf("third name = %s", filepath.Base(third))
	}
}

func TestWriteResultCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteResult(dir, DecryptedPrefix, "TEXT")
	if err != nil {
		t.Fatalf("WriteResult: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "TEXT" {
		t.Errorf("content = %q", data)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package textprep normalizes raw file content into the restricted character
// sets the cipher operates on. Cleaning is lossy on purpose: punctuation,
// whitespace and accented characters have no cell in the Polybius square, so
// they are dropped before the cipher ever sees them.
package textprep

import "strings"

// =============================================================================
// PLAINTEXT CLEANING
// =============================================================================

// CleanPlain reduces arbitrary text to the 36-character grid alphabet:
// ASCII letters are uppercased, digits pass through, everything else is
// removed.
func CleanPlain(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z':
			out.WriteByte(c - 'a' + 'A')
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			out.WriteByte(c)
		}
	}
	return out.String()
}

// =============================================================================
// CIPHERTEXT CLEANING
// =============================================================================

// CleanCipher keeps only ADFGVX symbols, uppercasing lowercase forms and
// discarding everything else, including line breaks a transcriber may have
// added.
func CleanCipher(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if isCipherSymbol(c) {
			out.WriteByte(c)
		}
	}
	return out.String()
}

// ValidateCipherText reports how many characters of raw are neither ADFGVX
// symbols (either case) nor whitespace. A count of zero means the content is
// plausibly ciphertext; anything else suggests the file holds plaintext or
// was corrupted.
func ValidateCipherText(raw string) int {
	invalid := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !isCipherSymbol(c) && !isSpace(c) {
			invalid++
		}
	}
	return invalid
}

func isCipherSymbol(c byte) bool {
	switch c {
	case 'A', 'D', 'F', 'G', 'V', 'X':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

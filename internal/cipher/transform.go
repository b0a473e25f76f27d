// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

import "strings"

// =============================================================================
// CIPHER TRANSFORM
// =============================================================================
//
// Both directions are pure functions of (text, key). Each call validates the
// key, builds a fresh schedule and matrix, and touches no shared state, so
// concurrent use needs no coordination.

// Encrypt enciphers plaintext with key. The plaintext must already be
// restricted to uppercase letters and digits (see internal/textprep);
// any other character aborts with UnmappableCharacterError.
//
// Pipeline: substitute every character through the Polybius square, lay the
// symbol stream into a matrix under the original key row, reorder the columns
// into sorted-key order, then read the matrix column by column.
//
// The matrix holds only whole rows: up to len(key)-1 trailing symbols of the
// substituted stream are silently dropped (see truncateToMultipleOf).
func Encrypt(plaintext, key string) (string, error) {
	sched, err := NewSchedule(key)
	if err != nil {
		return "", err
	}

	encoded, err := substitute(plaintext)
	if err != nil {
		return "", err
	}

	matrix := newKeyedMatrix(encoded, sched.Key)
	fillRowMajor(matrix, encoded)

	reordered := reorderColumns(matrix, sched.SortedIndices)

	return readColumnMajor(reordered), nil
}

// Decrypt reverses Encrypt for ciphertext produced with the same key.
// Ciphertext characters outside the ADFGVX alphabet surface as
// InvalidSymbolError from the final decode stage.
//
// Pipeline: lay the ciphertext into a matrix under the sorted key (filled
// column-major, undoing the columnar read), restore original column order
// with the inverse permutation, read the matrix row by row, then decode the
// recovered symbol pairs through the Polybius square.
func Decrypt(ciphertext, key string) (string, error) {
	sched, err := NewSchedule(key)
	if err != nil {
		return "", err
	}

	matrix := newKeyedMatrix(ciphertext, sched.SortedKey)
	fillColumnMajor(matrix, ciphertext)

	restored := reorderColumns(matrix, sched.OriginalIndices)

	return desubstitute(readRowMajor(restored))
}

// =============================================================================
// SUBSTITUTION STAGE
// =============================================================================

// substitute replaces every plaintext character with its two-symbol pair,
// producing a stream of length 2*len(plaintext).
func substitute(plaintext string) (string, error) {
	var encoded strings.Builder
	encoded.Grow(2 * len(plaintext))

	for i := 0; i < len(plaintext); i++ {
		row, col, err := EncodeChar(plaintext[i])
		if err != nil {
			return "", err
		}
		encoded.WriteByte(row)
		encoded.WriteByte(col)
	}
	return encoded.String(), nil
}

// desubstitute walks the symbol stream two characters at a time, decoding
// each pair back to a plaintext character. A trailing unpaired symbol is
// dropped, consistent with the lossy matrix sizing.
func desubstitute(encoded string) (string, error) {
	var plain strings.Builder
	plain.Grow(len(encoded) / 2)

	for i := 0; i+1 < len(encoded); i += 2 {
		c, err := DecodeSymbolPair(encoded[i], encoded[i+1])
		if err != nil {
			return "", err
		}
		plain.WriteByte(c)
	}
	return plain.String(), nil
}

// =============================================================================
// WORK MATRIX
// =============================================================================

// truncateToMultipleOf rounds length down to a multiple of divisor.
//
// This is the documented lossy step of the cipher: content that does not fill
// a whole matrix row is discarded, losing up to divisor-1 trailing characters
// per operation. The original system behaves this way and round-tripping
// existing ciphertext depends on it, so it is preserved here rather than
// padded over. Kept as its own function so the behavior is easy to audit.
func truncateToMultipleOf(length, divisor int) int {
	return length - length%divisor
}

// newKeyedMatrix allocates a matrix sized for content under keyRow: one
// column per key character, row 0 holding the key row, and exactly enough
// further rows for the truncated content.
func newKeyedMatrix(content, keyRow string) [][]byte {
	columns := len(keyRow)
	rows := truncateToMultipleOf(len(content), columns)/columns + 1

	matrix := make([][]byte, rows)
	for r := range matrix {
		matrix[r] = make([]byte, columns)
	}
	copy(matrix[0], keyRow)
	return matrix
}

// fillRowMajor writes content into the matrix left-to-right, top-to-bottom,
// starting below the key row. Content beyond the matrix capacity is ignored.
func fillRowMajor(matrix [][]byte, content string) {
	i := 0
	for r := 1; r < len(matrix); r++ {
		for c := 0; c < len(matrix[0]); c++ {
			if i < len(content) {
				matrix[r][c] = content[i]
				i++
			}
		}
	}
}

// fillColumnMajor writes content into the matrix top-to-bottom within each
// column, left-to-right across columns, starting below the key row. This is
// the inverse of readColumnMajor.
func fillColumnMajor(matrix [][]byte, content string) {
	i := 0
	for c := 0; c < len(matrix[0]); c++ {
		for r := 1; r < len(matrix); r++ {
			if i < len(content) {
				matrix[r][c] = content[i]
				i++
			}
		}
	}
}

// reorderColumns returns a new matrix whose column c is the source matrix's
// column indices[c], applied to every row including the key row.
func reorderColumns(matrix [][]byte, indices []int) [][]byte {
	reordered := make([][]byte, len(matrix))
	for r := range matrix {
		reordered[r] = make([]byte, len(matrix[r]))
		for c := range matrix[r] {
			reordered[r][c] = matrix[r][indices[c]]
		}
	}
	return reordered
}

// readColumnMajor concatenates the matrix column by column, skipping the key
// row.
func readColumnMajor(matrix [][]byte) string {
	var out strings.Builder
	out.Grow((len(matrix) - 1) * len(matrix[0]))

	for c := 0; c < len(matrix[0]); c++ {
		for r := 1; r < len(matrix); r++ {
			out.WriteByte(matrix[r][c])
		}
	}
	return out.String()
}

// readRowMajor concatenates the matrix row by row, skipping the key row.
func readRowMajor(matrix [][]byte) string {
	var out strings.Builder
	out.Grow((len(matrix) - 1) * len(matrix[0]))

	for r := 1; r < len(matrix); r++ {
		out.Write(matrix[r])
	}
	return out.String()
}

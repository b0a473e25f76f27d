// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TRANSFORM TESTS
// =============================================================================

// Worked end-to-end vector. With key GERMAN the 24-symbol substitution of
// ATTACKATDAWN fills the matrix exactly, so nothing is clipped and the round
// trip is lossless.
func TestEncryptKnownVector(t *testing.T) {
	got, err := Encrypt("ATTACKATDAWN", "GERMAN")
	require.NoError(t, err)
	assert.Equal(t, "XGFFGGGGDDDDGVGGGDXFXGXV", got)

	back, err := Decrypt(got, "GERMAN")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", back)
}

func TestRoundTripWholeRows(t *testing.T) {
	// Plaintexts whose 2n symbols divide evenly by the key length survive
	// the round trip intact.
	tests := []struct {
		plaintext string
		key       string
	}{
		{"HELLO", "abcde"},             // 10 symbols, 5 columns
		{"ABCDEF", "GERMAN"},           // 12 symbols, 6 columns
		{"SECRETMESSAGE1", "pass1234"}, // 28 symbols, 8 columns
		{"ABCDEFGHIJKLMNOP", "abcdefghijklmnop"},
	}

	for _, tt := range tests {
		ct, err := Encrypt(tt.plaintext, tt.key)
		require.NoError(t, err, "encrypting %q", tt.plaintext)
		assert.Len(t, ct, 2*len(tt.plaintext))

		pt, err := Decrypt(ct, tt.key)
		require.NoError(t, err, "decrypting %q", ct)
		assert.Equal(t, tt.plaintext, pt)
	}
}

// Ciphertext length is 2n rounded down to a multiple of the key length, and
// the recovered plaintext is the longest prefix those whole rows can carry.
func TestTruncationLength(t *testing.T) {
	tests := []struct {
		plaintext string
		key       string
		wantLen   int
		wantBack  string
	}{
		{"HELLOX", "abcde", 10, "HELLO"}, // 12 symbols, 2 clipped
		{"HELLO", "GERMAN", 6, "HEL"},    // 10 symbols, 4 clipped
		{"AB", "abcdefg", 0, ""},         // 4 symbols, all clipped
		{"ABCD", "abc", 6, "ABC"},        // 8 symbols, 2 clipped
	}

	for _, tt := range tests {
		ct, err := Encrypt(tt.plaintext, tt.key)
		require.NoError(t, err)
		assert.Len(t, ct, tt.wantLen, "ciphertext of %q under %q", tt.plaintext, tt.key)

		back, err := Decrypt(ct, tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.wantBack, back)
	}
}

func TestTruncateToMultipleOf(t *testing.T) {
	assert.Equal(t, 24, truncateToMultipleOf(24, 6))
	assert.Equal(t, 24, truncateToMultipleOf(29, 6))
	assert.Equal(t, 0, truncateToMultipleOf(5, 6))
	assert.Equal(t, 0, truncateToMultipleOf(0, 6))
}

func TestEncryptEmptyInput(t *testing.T) {
	ct, err := Encrypt("", "GERMAN")
	require.NoError(t, err)
	assert.Equal(t, "", ct)

	pt, err := Decrypt("", "GERMAN")
	require.NoError(t, err)
	assert.Equal(t, "", pt)
}

func TestEncryptInvalidKey(t *testing.T) {
	_, err := Encrypt("HELLO", "abc")
	var keyErr *InvalidKeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, KeyTooShort, keyErr.Fault)

	_, err = Decrypt("ADFGVX", "aabbc")
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, KeyHasDuplicates, keyErr.Fault)
}

func TestEncryptUnmappableCharacter(t *testing.T) {
	_, err := Encrypt("HELLO WORLD", "GERMAN")
	var unmappable *UnmappableCharacterError
	require.ErrorAs(t, err, &unmappable)
	assert.Equal(t, byte(' '), unmappable.Char)
}

// 'Z' is in the Polybius grid but not the ADFGVX alphabet, so ciphertext
// containing it must be rejected at decode.
func TestDecryptInvalidSymbol(t *testing.T) {
	_, err := Decrypt("ZDFGA", "abcde")
	var invalid *InvalidSymbolError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte('Z'), invalid.Symbol)
}

// Encryption output only ever contains the six alphabet symbols.
func TestCiphertextAlphabet(t *testing.T) {
	ct, err := Encrypt(gridCharacters, "cipher7")
	require.NoError(t, err)
	require.NotEmpty(t, ct)

	for i := 0; i < len(ct); i++ {
		assert.True(t, IsSymbol(ct[i]), "position %d: %q", i, ct[i])
	}
}

// The transform must be stable under repeated calls and across content that
// spans many rows.
func TestRoundTripLongContent(t *testing.T) {
	plaintext := strings.Repeat(gridCharacters, 20) // 720 chars, 1440 symbols
	key := "FIELD19"

	first, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	second, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	back, err := Decrypt(first, key)
	require.NoError(t, err)

	clipped := truncateToMultipleOf(2*len(plaintext), len(key))
	assert.Len(t, back, clipped/2)
	assert.Equal(t, plaintext[:clipped/2], back)
}

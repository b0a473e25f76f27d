// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// POLYBIUS SQUARE TESTS
// =============================================================================

const gridCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Every grid character must encode to a unique symbol pair and decode back to
// itself.
func TestPolybiusBijection(t *testing.T) {
	seen := make(map[[2]byte]byte)

	for i := 0; i < len(gridCharacters); i++ {
		c := gridCharacters[i]

		row, col, err := EncodeChar(c)
		require.NoError(t, err, "encoding %q", c)
		assert.True(t, IsSymbol(row), "row symbol for %q", c)
		assert.True(t, IsSymbol(col), "column symbol for %q", c)

		pair := [2]byte{row, col}
		if prev, dup := seen[pair]; dup {
			t.Fatalf("pair %c%c assigned to both %q and %q", row, col, prev, c)
		}
		seen[pair] = c

		back, err := DecodeSymbolPair(row, col)
		require.NoError(t, err)
		assert.Equal(t, c, back, "round trip of %q", c)
	}

	assert.Len(t, seen, 36)
}

func TestEncodeCharKnownPositions(t *testing.T) {
	tests := []struct {
		char     byte
		row, col byte
	}{
		{'P', 'A', 'A'},
		{'6', 'A', 'X'},
		{'A', 'D', 'G'},
		{'8', 'X', 'X'},
		{'T', 'X', 'G'},
	}

	for _, tt := range tests {
		row, col, err := EncodeChar(tt.char)
		require.NoError(t, err, "encoding %q", tt.char)
		assert.Equal(t, tt.row, row, "row of %q", tt.char)
		assert.Equal(t, tt.col, col, "column of %q", tt.char)
	}
}

func TestEncodeCharUnmappable(t *testing.T) {
	for _, c := range []byte{' ', 'a', '!', '\n', '@'} {
		_, _, err := EncodeChar(c)
		var unmappable *UnmappableCharacterError
		require.ErrorAs(t, err, &unmappable, "encoding %q", c)
		assert.Equal(t, c, unmappable.Char)
	}
}

func TestDecodeSymbolPairInvalidSymbol(t *testing.T) {
	// 'Z' is a grid character but not an alphabet symbol.
	_, err := DecodeSymbolPair('Z', 'A')
	var invalid *InvalidSymbolError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte('Z'), invalid.Symbol)

	_, err = DecodeSymbolPair('A', 'Q')
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, byte('Q'), invalid.Symbol)
}

func TestIsSymbol(t *testing.T) {
	for _, c := range Alphabet {
		assert.True(t, IsSymbol(c), "%q", c)
	}
	for _, c := range []byte{'B', 'Z', '0', ' ', 'a', 'd'} {
		assert.False(t, IsSymbol(c), "%q", c)
	}
}

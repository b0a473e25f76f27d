// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

// =============================================================================
// POLYBIUS SQUARE
// =============================================================================

// Alphabet holds the six symbols that label the rows and columns of the
// Polybius square. They are also the only characters a valid ciphertext may
// contain.
var Alphabet = [6]byte{'A', 'D', 'F', 'G', 'V', 'X'}

// polybiusSquare maps every uppercase letter and digit to a unique
// (row, column) pair of Alphabet symbols. The layout is fixed; changing it
// breaks compatibility with previously produced ciphertext.
var polybiusSquare = [6][6]byte{
	{'P', 'H', '0', 'Q', 'G', '6'},
	{'4', 'M', 'E', 'A', '1', 'Y'},
	{'L', '2', 'N', 'O', 'F', 'D'},
	{'X', 'K', 'R', '3', 'C', 'V'},
	{'S', '5', 'Z', 'W', '7', 'B'},
	{'J', '9', 'U', 'T', 'I', '8'},
}

// EncodeChar maps a single grid character to its (row, column) symbol pair.
// The row symbol is returned first, matching the order symbols appear in the
// encoded stream. Returns UnmappableCharacterError for anything outside the
// 36-character grid.
func EncodeChar(c byte) (row, col byte, err error) {
	for r := 0; r < len(Alphabet); r++ {
		for k := 0; k < len(Alphabet); k++ {
			if polybiusSquare[r][k] == c {
				return Alphabet[r], Alphabet[k], nil
			}
		}
	}
	return 0, 0, &UnmappableCharacterError{Char: c}
}

// DecodeSymbolPair maps a (row, column) pair of ADFGVX symbols back to the
// grid character at that position. Returns InvalidSymbolError naming the
// first symbol that is not part of the alphabet.
func DecodeSymbolPair(rowSym, colSym byte) (byte, error) {
	row := symbolIndex(rowSym)
	if row < 0 {
		return 0, &InvalidSymbolError{Symbol: rowSym}
	}
	col := symbolIndex(colSym)
	if col < 0 {
		return 0, &InvalidSymbolError{Symbol: colSym}
	}
	return polybiusSquare[row][col], nil
}

// IsSymbol reports whether c is one of the six ADFGVX alphabet symbols.
func IsSymbol(c byte) bool {
	return symbolIndex(c) >= 0
}

// symbolIndex returns the position of c in Alphabet, or -1.
// Linear scan is fine at this size.
func symbolIndex(c byte) int {
	for i, s := range Alphabet {
		if s == c {
			return i
		}
	}
	return -1
}

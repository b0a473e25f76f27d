// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cipher implements the ADFGVX field cipher: a Polybius-square
// substitution followed by a key-driven columnar transposition.
package cipher

import "fmt"

// =============================================================================
// ERRORS
// =============================================================================

// KeyFault identifies which validation rule a cipher key failed.
type KeyFault string

const (
	KeyTooShort        KeyFault = "too_short"
	KeyTooLong         KeyFault = "too_long"
	KeyNotAlphanumeric KeyFault = "not_alphanumeric"
	KeyHasDuplicates   KeyFault = "has_duplicates"
)

// InvalidKeyError is returned when a key fails validation. Checks run in a
// fixed priority order (length, character set, uniqueness) and only the first
// failing rule is reported.
type InvalidKeyError struct {
	Key   string
	Fault KeyFault
}

func (e *InvalidKeyError) Error() string {
	switch e.Fault {
	case KeyTooShort:
		return fmt.Sprintf("invalid key %q: shorter than %d characters", e.Key, MinKeyLength)
	case KeyTooLong:
		return fmt.Sprintf("invalid key %q: longer than %d characters", e.Key, MaxKeyLength)
	case KeyNotAlphanumeric:
		return fmt.Sprintf("invalid key %q: contains non-alphanumeric characters", e.Key)
	case KeyHasDuplicates:
		return fmt.Sprintf("invalid key %q: contains duplicate characters", e.Key)
	}
	return fmt.Sprintf("invalid key %q", e.Key)
}

// UnmappableCharacterError is returned by Encrypt when the plaintext contains
// a character outside the 36-symbol Polybius grid. Callers are expected to
// pre-clean input to uppercase letters and digits (see internal/textprep).
type UnmappableCharacterError struct {
	Char byte
}

func (e *UnmappableCharacterError) Error() string {
	return fmt.Sprintf("character not in Polybius square: %q", e.Char)
}

// InvalidSymbolError is returned by Decrypt when a ciphertext character is
// not one of the six ADFGVX symbols.
type InvalidSymbolError struct {
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("character not in the ADFGVX alphabet: %q", e.Symbol)
}

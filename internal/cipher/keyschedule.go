// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cipher

import (
	"sort"
	"unicode/utf8"
)

// =============================================================================
// KEY VALIDATION
// =============================================================================

// Key length bounds. A key shorter than the minimum produces too few columns
// to usefully transpose; longer than the maximum exceeds the alphabet a user
// can reasonably keep duplicate-free.
const (
	MinKeyLength = 5
	MaxKeyLength = 16
)

// ValidateKey checks a raw key against all four rules in priority order:
// length lower bound, length upper bound, character set, uniqueness.
// Only the first failing rule is reported. Uniqueness is case-sensitive,
// so "aAbBc" is a valid key.
func ValidateKey(key string) error {
	// Bounds count characters, not bytes, so a multi-byte rune is one
	// character toward the length before failing the character-set rule.
	length := utf8.RuneCountInString(key)
	if length < MinKeyLength {
		return &InvalidKeyError{Key: key, Fault: KeyTooShort}
	}
	if length > MaxKeyLength {
		return &InvalidKeyError{Key: key, Fault: KeyTooLong}
	}
	for i := 0; i < len(key); i++ {
		if !isAlphanumeric(key[i]) {
			return &InvalidKeyError{Key: key, Fault: KeyNotAlphanumeric}
		}
	}
	for i := 0; i < len(key); i++ {
		for j := i + 1; j < len(key); j++ {
			if key[i] == key[j] {
				return &InvalidKeyError{Key: key, Fault: KeyHasDuplicates}
			}
		}
	}
	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// =============================================================================
// KEY SCHEDULE
// =============================================================================

// Schedule is everything the transposition stages need from a key: the key
// itself, its lexicographically sorted form, and the two mutually inverse
// column permutations derived from the sort.
type Schedule struct {
	// Key is the original key, exactly as supplied.
	Key string

	// SortedKey is Key sorted ascending by byte value
	// (digits < uppercase < lowercase).
	SortedKey string

	// SortedIndices maps sorted position -> original column.
	// SortedIndices[i] is the original-key column whose character occupies
	// position i of SortedKey.
	SortedIndices []int

	// OriginalIndices is the inverse permutation of SortedIndices:
	// OriginalIndices[SortedIndices[i]] == i for all i.
	OriginalIndices []int
}

// NewSchedule validates key and derives its schedule. The schedule is
// immutable once built; both Encrypt and Decrypt compute a fresh one per
// call, so concurrent callers never share state.
func NewSchedule(key string) (*Schedule, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	sorted := sortLexicographically(key)
	sortedIdx := sortedColumnOrigins(key, sorted)

	return &Schedule{
		Key:             key,
		SortedKey:       sorted,
		SortedIndices:   sortedIdx,
		OriginalIndices: invertPermutation(sortedIdx),
	}, nil
}

// Columns returns the key length, which is the column count of every work
// matrix built from this schedule.
func (s *Schedule) Columns() int {
	return len(s.Key)
}

// sortLexicographically returns key sorted ascending by raw byte value.
// sort.SliceStable keeps equal characters in input order, which preserves a
// one-to-one assignment even if the duplicate-free invariant were relaxed.
func sortLexicographically(key string) string {
	b := []byte(key)
	sort.SliceStable(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// sortedColumnOrigins computes, for each position of the sorted key, the
// original-key column its character came from. Each original position is
// claimed at most once; with duplicate characters the leftmost unclaimed
// match wins, keeping the mapping a permutation.
func sortedColumnOrigins(original, sorted string) []int {
	origins := make([]int, len(original))
	claimed := make([]bool, len(original))

	for i := 0; i < len(sorted); i++ {
		for j := 0; j < len(original); j++ {
			if !claimed[j] && original[j] == sorted[i] {
				origins[i] = j
				claimed[j] = true
				break
			}
		}
	}
	return origins
}

// invertPermutation returns the inverse of p: inv[p[i]] = i.
func invertPermutation(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package wordlist carries the reference English word table. Importing it
// compiles the 2048-word table into the binary; callers that supply their
// own table stay on the root package alone and link none of this.
package wordlist

import (
	"sort"
	"strings"

	"github.com/complex-gh/mnemonic_go"
)

// English is the reference table. The list is sorted, so every lookup is a
// binary search. The zero value is ready to use and carries no state.
type English struct{}

var _ mnemonic.WordList = English{}

// GetWord returns the word at the given index
func (English) GetWord(bits mnemonic.Bits11) (string, error) {
	i := int(bits.Bits())
	if i >= len(english) {
		return "", mnemonic.StatusErrDamagedWord
	}
	return english[i], nil
}

// WordsByPrefix returns the entries starting with prefix in ascending index
// order. The table is sorted, so the matches form one contiguous run.
func (English) WordsByPrefix(prefix string) ([]mnemonic.WordListElement, error) {
	var out []mnemonic.WordListElement
	start := sort.SearchStrings(english[:], prefix)
	for i := start; i < len(english) && strings.HasPrefix(english[i], prefix); i++ {
		bits, err := mnemonic.NewBits11(uint16(i))
		if err != nil {
			return nil, err
		}
		out = append(out, mnemonic.WordListElement{Word: english[i], Bits11: bits})
	}
	return out, nil
}

// Bits11ForWord resolves an exact, case-sensitive whole-word match
func (English) Bits11ForWord(word string) (mnemonic.Bits11, error) {
	i := sort.SearchStrings(english[:], word)
	if i >= len(english) || english[i] != word {
		return 0, mnemonic.StatusErrNoWord
	}
	return mnemonic.NewBits11(uint16(i))
}

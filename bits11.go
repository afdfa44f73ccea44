// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

// Bits11 is a validated 11-bit index into a word table. The zero value is a
// valid index (the first table word); out-of-range values cannot be
// constructed through NewBits11.
type Bits11 uint16

// NewBits11 validates i as a word index
func NewBits11(i uint16) (Bits11, error) {
	if i >= TotalWords {
		return 0, StatusErrIndex
	}
	return Bits11(i), nil
}

// Bits returns the raw index value
func (b Bits11) Bits() uint16 {
	return uint16(b)
}

// WordListElement pairs a display word with its table index. It is produced
// by prefix search and does not own the underlying table.
type WordListElement struct {
	Word   string
	Bits11 Bits11
}

// WordList resolves between word text and 11-bit indices. The core consumes
// this capability instead of a concrete table so the storage and search
// strategy stay outside the codec.
type WordList interface {
	// GetWord returns the word at the given index. Implementations return
	// StatusErrDamagedWord if the table cannot resolve an index; with a full
	// 2048-entry table this cannot happen for a valid Bits11.
	GetWord(bits Bits11) (string, error)

	// WordsByPrefix returns every table entry whose word starts with prefix,
	// in ascending index order.
	WordsByPrefix(prefix string) ([]WordListElement, error)

	// Bits11ForWord resolves an exact, case-sensitive whole-word match, or
	// fails with StatusErrNoWord.
	Bits11ForWord(word string) (Bits11, error)
}

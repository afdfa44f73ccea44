// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import (
	"strings"
)

// WordSet is an ordered sequence of word indices, up to 24 entries. It holds
// secret-derived material: the owner calls Free when done with it, and every
// internal error path wipes transient buffers before returning.
type WordSet struct {
	bits11Set []Bits11
}

// NewWordSet creates an empty set for incremental phrase entry
func NewWordSet() *WordSet {
	return &WordSet{bits11Set: make([]Bits11, 0, MaxSetLen)}
}

// FromEntropy encodes raw entropy into a word set. The entropy length must
// be 16 to 32 bytes and divisible by 4; it alone determines the word count
// (16/20/24/28/32 bytes yield 12/15/18/21/24 words). The SHA-256 checksum
// byte supplies the extra bits needed to reach a multiple of 11.
func FromEntropy(entropy []byte) (*WordSet, error) {
	if len(entropy) < 16 || len(entropy) > 32 || len(entropy)%4 != 0 {
		return nil, StatusErrEntropy
	}

	checksumByte := sha256FirstByte(entropy)

	acc := newBitAccumulator((len(entropy) + 1) * bitsInByte)
	defer acc.wipe()

	for _, b := range entropy {
		acc.appendByte(b)
	}
	acc.appendByte(checksumByte)

	return &WordSet{bits11Set: acc.toBits11Set()}, nil
}

// AddWord resolves word through the table and appends its index. Appending
// beyond 24 entries is a no-op. The word is NFKD-normalized first; plain
// ASCII input is passed through untouched.
func (w *WordSet) AddWord(word string, list WordList) error {
	if len(w.bits11Set) >= MaxSetLen {
		return nil
	}
	bits, err := list.Bits11ForWord(utf8NFKDLazy(word))
	if err != nil {
		return err
	}
	w.bits11Set = append(w.bits11Set, bits)
	return nil
}

// Len returns the current number of words in the set
func (w *WordSet) Len() int {
	return len(w.bits11Set)
}

// IsFinalizable reports whether the current length is a supported word count
func (w *WordSet) IsFinalizable() bool {
	_, err := MnemonicTypeFromWordCount(len(w.bits11Set))
	return err == nil
}

// ToEntropy re-expands the indices into bits, splits off the embedded
// checksum and validates it against a fresh SHA-256 of the entropy
// candidate. Fails with StatusErrWordsNumber for unsupported lengths and
// StatusErrChecksum for corrupted or mistyped phrases. The set itself is
// left untouched; the caller owns the returned entropy.
func (w *WordSet) ToEntropy() ([]byte, error) {
	mt, err := MnemonicTypeFromWordCount(len(w.bits11Set))
	if err != nil {
		return nil, err
	}

	acc := newBitAccumulator(mt.TotalBits())
	defer acc.wipe()

	for _, bits := range w.bits11Set {
		acc.appendBits11(bits)
	}

	entropy := acc.toBytes()
	entropyLen := mt.EntropyBits() / bitsInByte

	// The trailing byte overlaps the entropy/checksum boundary; its leading
	// bits are the embedded checksum.
	actualChecksum := checksum(entropy[entropyLen], mt.ChecksumBits())
	memzero(entropy[entropyLen:])
	entropy = entropy[:entropyLen]

	expectedChecksum := checksum(sha256FirstByte(entropy), mt.ChecksumBits())
	if actualChecksum != expectedChecksum {
		memzero(entropy)
		return nil, StatusErrChecksum
	}
	return entropy, nil
}

// ToPhrase maps each index to its word and joins them with single spaces.
// Lookup failures are propagated; they cannot occur for indices produced by
// FromEntropy against a full table, but are handled rather than assumed away.
func (w *WordSet) ToPhrase(list WordList) (string, error) {
	var phrase strings.Builder
	if n := len(w.bits11Set); n > 0 {
		phrase.Grow(n*(WordMaxLen+SeparatorLen) - SeparatorLen)
	}
	for _, bits := range w.bits11Set {
		word, err := list.GetWord(bits)
		if err != nil {
			return "", err
		}
		if phrase.Len() > 0 {
			phrase.WriteByte(' ')
		}
		phrase.WriteString(word)
	}
	return phrase.String(), nil
}

// FromPhrase builds a word set from a whole phrase string. The phrase is
// split on whitespace after NFKD-lazy normalization. Phrases longer than 24
// words fail with StatusErrWordsNumber instead of being silently truncated.
func FromPhrase(phrase string, list WordList) (*WordSet, error) {
	words := SplitPhrase(phrase)
	if len(words) > MaxSetLen {
		return nil, StatusErrWordsNumber
	}
	w := NewWordSet()
	for _, word := range words {
		if err := w.AddWord(word, list); err != nil {
			w.Free()
			return nil, err
		}
	}
	return w, nil
}

// Free securely erases the index storage
func (w *WordSet) Free() {
	for i := range w.bits11Set {
		w.bits11Set[i] = 0
	}
	w.bits11Set = w.bits11Set[:0]
}

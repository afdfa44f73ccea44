// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

// Generate draws fresh entropy for the given type and encodes it. The
// transient entropy buffer is wiped before returning; the caller reads the
// secret back through ToEntropy when needed.
func Generate(mt MnemonicType) (*WordSet, error) {
	if _, err := MnemonicTypeFromWordCount(mt.WordCount()); err != nil {
		return nil, err
	}

	entropy := make([]byte, mt.EntropyBits()/bitsInByte)
	defer memzero(entropy)

	if err := getRandomBytes(entropy); err != nil {
		return nil, err
	}
	return FromEntropy(entropy)
}

// Validate reports whether phrase is a well-formed mnemonic against the
// given table: supported word count, known words and a matching checksum.
func Validate(phrase string, list WordList) bool {
	w, err := FromPhrase(phrase, list)
	if err != nil {
		return false
	}
	defer w.Free()

	entropy, err := w.ToEntropy()
	if err != nil {
		return false
	}
	memzero(entropy)
	return true
}

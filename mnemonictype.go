// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

// MnemonicType classifies a supported word count into its entropy and
// checksum bit widths. For every variant TotalBits() == 11 * WordCount().
type MnemonicType int

const (
	// Words12 encodes 128 bits of entropy with a 4-bit checksum
	Words12 MnemonicType = 12

	// Words15 encodes 160 bits of entropy with a 5-bit checksum
	Words15 MnemonicType = 15

	// Words18 encodes 192 bits of entropy with a 6-bit checksum
	Words18 MnemonicType = 18

	// Words21 encodes 224 bits of entropy with a 7-bit checksum
	Words21 MnemonicType = 21

	// Words24 encodes 256 bits of entropy with an 8-bit checksum
	Words24 MnemonicType = 24
)

// MnemonicTypeFromWordCount classifies a word count
func MnemonicTypeFromWordCount(n int) (MnemonicType, error) {
	switch n {
	case 12, 15, 18, 21, 24:
		return MnemonicType(n), nil
	}
	return 0, StatusErrWordsNumber
}

// WordCount returns the number of words for the type
func (t MnemonicType) WordCount() int {
	return int(t)
}

// ChecksumBits returns the number of checksum bits (4 to 8)
func (t MnemonicType) ChecksumBits() int {
	return int(t) / 3
}

// EntropyBits returns the number of entropy bits (128 to 256)
func (t MnemonicType) EntropyBits() int {
	return int(t) * 32 / 3
}

// TotalBits returns the combined entropy and checksum bit count
func (t MnemonicType) TotalBits() int {
	return t.EntropyBits() + t.ChecksumBits()
}

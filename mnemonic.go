// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package mnemonic converts raw entropy into checksummed, human-transcribable
// word phrases and back, detecting transcription errors along the way.
//
// Entropy of 16, 20, 24, 28 or 32 bytes is hashed with SHA-256, the leading
// checksum bits are appended, and the combined bit sequence is split into
// 11-bit word indices. The word table itself is an external collaborator
// behind the WordList interface; a reference English table lives in the
// wordlist subpackage and is only compiled in when imported.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Constants
const (
	// TotalWords is the number of words in a word table
	TotalWords = 2048

	// MaxSetLen is the maximum number of words in a set
	MaxSetLen = 24

	// WordMaxLen is the maximum length of a single word
	WordMaxLen = 8

	// SeparatorLen is the length of the phrase word separator
	SeparatorLen = 1

	bitsInByte = 8
	bitsInU11  = 11
)

// Status represents the result of a mnemonic operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrIndex indicates a word index outside [0, 2047]
	StatusErrIndex

	// StatusErrEntropy indicates an unsupported entropy length
	StatusErrEntropy

	// StatusErrWordsNumber indicates an unsupported number of words
	StatusErrWordsNumber

	// StatusErrChecksum indicates a checksum mismatch
	StatusErrChecksum

	// StatusErrNoWord indicates a word that is not in the word table
	StatusErrNoWord

	// StatusErrDamagedWord indicates an index-to-word lookup failure
	StatusErrDamagedWord
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrIndex:
		return "word index is out of range"
	case StatusErrEntropy:
		return "invalid entropy length"
	case StatusErrWordsNumber:
		return "unexpected number of words"
	case StatusErrChecksum:
		return "checksum mismatch"
	case StatusErrNoWord:
		return "word is not in the word table"
	case StatusErrDamagedWord:
		return "unable to extract a word from the word table"
	}
	return "unknown error"
}

// memzero securely erases memory by overwriting it with zeros
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// getRandomBytes generates cryptographically secure random bytes
func getRandomBytes(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// sha256FirstByte returns the first byte of the SHA-256 digest of input
func sha256FirstByte(input []byte) byte {
	digest := sha256.Sum256(input)
	return digest[0]
}

// checksum extracts the top bits of source. bits must not exceed 8; every
// MnemonicType satisfies that.
func checksum(source byte, bits int) byte {
	return source >> (bitsInByte - bits)
}

// utf8NFKD converts a UTF8 string to the decomposed canonical form (NFKD)
func utf8NFKD(str string) string {
	return norm.NFKD.String(str)
}

// utf8NFKDLazy only normalizes strings that contain non-ASCII characters
func utf8NFKDLazy(str string) string {
	for _, r := range str {
		if r > 127 {
			return utf8NFKD(str)
		}
	}
	return str
}

// SplitPhrase splits a mnemonic phrase into normalized words
func SplitPhrase(str string) []string {
	return strings.Fields(utf8NFKDLazy(str))
}

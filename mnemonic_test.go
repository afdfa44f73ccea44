// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/complex-gh/mnemonic_go"
	"github.com/complex-gh/mnemonic_go/wordlist"
)

var english = wordlist.English{}

func encodePhrase(t *testing.T, entropy []byte) string {
	t.Helper()
	w, err := mnemonic.FromEntropy(entropy)
	if err != nil {
		t.Fatalf("FromEntropy error: %v", err)
	}
	defer w.Free()

	phrase, err := w.ToPhrase(english)
	if err != nil {
		t.Fatalf("ToPhrase error: %v", err)
	}
	return phrase
}

func decodePhrase(t *testing.T, phrase string) ([]byte, error) {
	t.Helper()
	w := mnemonic.NewWordSet()
	defer w.Free()

	for _, word := range strings.Fields(phrase) {
		if err := w.AddWord(word, english); err != nil {
			return nil, err
		}
	}
	return w.ToEntropy()
}

func TestRoundTripAllLengths(t *testing.T) {
	patterns := map[string]func(i int) byte{
		"zeros":      func(i int) byte { return 0x00 },
		"ones":       func(i int) byte { return 0xFF },
		"sequential": func(i int) byte { return byte(i) },
		"alternate":  func(i int) byte { return byte(0xA5 << (i % 2)) },
	}

	for name, fill := range patterns {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{16, 20, 24, 28, 32} {
				entropy := make([]byte, n)
				for i := range entropy {
					entropy[i] = fill(i)
				}

				phrase := encodePhrase(t, entropy)
				if got := len(strings.Fields(phrase)); got != n*8*3/32 {
					t.Errorf("%d-byte entropy encoded to %d words", n, got)
				}

				decoded, err := decodePhrase(t, phrase)
				if err != nil {
					t.Fatalf("decoding %d-byte round trip: %v", n, err)
				}
				if !bytes.Equal(decoded, entropy) {
					t.Errorf("round trip mismatch for %d bytes:\n got %x\nwant %x", n, decoded, entropy)
				}
			}
		})
	}
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		entropy []byte
		phrase  string
	}{
		{
			"zeros-16",
			make([]byte, 16),
			strings.Repeat("abandon ", 11) + "about",
		},
		{
			"zeros-20",
			make([]byte, 20),
			strings.Repeat("abandon ", 14) + "address",
		},
		{
			"zeros-24",
			make([]byte, 24),
			strings.Repeat("abandon ", 17) + "agent",
		},
		{
			"zeros-28",
			make([]byte, 28),
			strings.Repeat("abandon ", 20) + "admit",
		},
		{
			"zeros-32",
			make([]byte, 32),
			strings.Repeat("abandon ", 23) + "art",
		},
		{
			"ones-16",
			bytes.Repeat([]byte{0xFF}, 16),
			strings.Repeat("zoo ", 11) + "wrong",
		},
		{
			"ones-32",
			bytes.Repeat([]byte{0xFF}, 32),
			strings.Repeat("zoo ", 23) + "vote",
		},
		{
			"alternating-16",
			bytes.Repeat([]byte{0x80}, 16),
			"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase := encodePhrase(t, tt.entropy)
			if phrase != tt.phrase {
				t.Errorf("encoded phrase mismatch:\n got %q\nwant %q", phrase, tt.phrase)
			}

			decoded, err := decodePhrase(t, tt.phrase)
			if err != nil {
				t.Fatalf("decoding known phrase: %v", err)
			}
			if !bytes.Equal(decoded, tt.entropy) {
				t.Errorf("decoded entropy mismatch: got %x want %x", decoded, tt.entropy)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	entropy := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	}
	first := encodePhrase(t, entropy)
	second := encodePhrase(t, entropy)
	if first != second {
		t.Errorf("encoding is not deterministic:\n%q\n%q", first, second)
	}
}

func TestChecksumSensitivity(t *testing.T) {
	// In the all-zeros 12-word phrase every entropy bit is zero and the
	// final four bits of the last word are the checksum (0b0011, "about").
	// Flipping any single checksum bit swaps the last word and must be
	// rejected.
	corrupted := map[string]string{
		"bit0": "accident", // 3 ^ 0b1000 = 11
		"bit1": "abstract", // 3 ^ 0b0100 = 7
		"bit2": "ability",  // 3 ^ 0b0010 = 1
		"bit3": "able",     // 3 ^ 0b0001 = 2
	}
	for name, last := range corrupted {
		t.Run(name, func(t *testing.T) {
			phrase := strings.Repeat("abandon ", 11) + last
			_, err := decodePhrase(t, phrase)
			if !errors.Is(err, mnemonic.StatusErrChecksum) {
				t.Errorf("corrupted phrase error = %v, want StatusErrChecksum", err)
			}
		})
	}

	// In the all-zeros 24-word phrase the entire last word is the checksum
	// (0x66, "art"). Flip each of its 8 bits in turn.
	t.Run("24-words", func(t *testing.T) {
		for bit := 0; bit < 8; bit++ {
			idx, err := mnemonic.NewBits11(uint16(0x66 ^ 1<<(7-bit)))
			if err != nil {
				t.Fatalf("NewBits11 error: %v", err)
			}
			last, err := english.GetWord(idx)
			if err != nil {
				t.Fatalf("GetWord(%d) error: %v", idx.Bits(), err)
			}
			phrase := strings.Repeat("abandon ", 23) + last
			_, err = decodePhrase(t, phrase)
			if !errors.Is(err, mnemonic.StatusErrChecksum) {
				t.Errorf("bit %d: corrupted phrase error = %v, want StatusErrChecksum", bit, err)
			}
		}
	})
}

func TestEntropyBitCorruption(t *testing.T) {
	// Flipping an entropy bit (first word abandon -> ability) changes the
	// recomputed checksum away from the embedded one.
	phrase := "ability " + strings.Repeat("abandon ", 10) + "about"
	_, err := decodePhrase(t, phrase)
	if !errors.Is(err, mnemonic.StatusErrChecksum) {
		t.Errorf("corrupted phrase error = %v, want StatusErrChecksum", err)
	}
}

func TestFromPhrase(t *testing.T) {
	phrase := strings.Repeat("abandon ", 11) + "about"

	w, err := mnemonic.FromPhrase(phrase, english)
	if err != nil {
		t.Fatalf("FromPhrase error: %v", err)
	}
	defer w.Free()

	entropy, err := w.ToEntropy()
	if err != nil {
		t.Fatalf("ToEntropy error: %v", err)
	}
	if !bytes.Equal(entropy, make([]byte, 16)) {
		t.Errorf("entropy = %x, want sixteen zero bytes", entropy)
	}
}

func TestFromPhraseTooLong(t *testing.T) {
	phrase := strings.Repeat("abandon ", 29) + "about"
	_, err := mnemonic.FromPhrase(phrase, english)
	if !errors.Is(err, mnemonic.StatusErrWordsNumber) {
		t.Errorf("FromPhrase error = %v, want StatusErrWordsNumber", err)
	}
}

func TestFromPhraseUnknownWord(t *testing.T) {
	_, err := mnemonic.FromPhrase("not a valid mnemonic phrase at all", english)
	if !errors.Is(err, mnemonic.StatusErrNoWord) {
		t.Errorf("FromPhrase error = %v, want StatusErrNoWord", err)
	}
}

func TestGenerate(t *testing.T) {
	for _, mt := range []mnemonic.MnemonicType{
		mnemonic.Words12, mnemonic.Words15, mnemonic.Words18,
		mnemonic.Words21, mnemonic.Words24,
	} {
		w, err := mnemonic.Generate(mt)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", mt.WordCount(), err)
		}

		if w.Len() != mt.WordCount() {
			t.Errorf("Generate(%d) produced %d words", mt.WordCount(), w.Len())
		}

		phrase, err := w.ToPhrase(english)
		if err != nil {
			t.Fatalf("ToPhrase error: %v", err)
		}
		w.Free()

		if !mnemonic.Validate(phrase, english) {
			t.Errorf("generated %d-word phrase should validate", mt.WordCount())
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		w, err := mnemonic.Generate(mnemonic.Words24)
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		phrase, err := w.ToPhrase(english)
		w.Free()
		if err != nil {
			t.Fatalf("ToPhrase error: %v", err)
		}
		if seen[phrase] {
			t.Fatal("two generated phrases should not collide")
		}
		seen[phrase] = true
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		valid  bool
	}{
		{
			"valid 12 words",
			strings.Repeat("abandon ", 11) + "about",
			true,
		},
		{
			"valid 24 words",
			strings.Repeat("abandon ", 23) + "art",
			true,
		},
		{
			"empty string",
			"",
			false,
		},
		{
			"wrong checksum",
			strings.Repeat("abandon ", 12),
			false,
		},
		{
			"unsupported count",
			strings.Repeat("abandon ", 12) + "about",
			false,
		},
		{
			"unknown words",
			"not a valid mnemonic phrase at all",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mnemonic.Validate(tt.phrase, english); got != tt.valid {
				t.Errorf("Validate() = %v, want %v", got, tt.valid)
			}
		})
	}
}

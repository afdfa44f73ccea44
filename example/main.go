package main

import (
	"encoding/hex"
	"fmt"

	"github.com/complex-gh/mnemonic_go"
	"github.com/complex-gh/mnemonic_go/wordlist"
)

func main() {
	english := wordlist.English{}

	// Generate a fresh 12-word phrase
	seed, err := mnemonic.Generate(mnemonic.Words12)
	if err != nil {
		panic(err)
	}
	defer seed.Free()

	phrase, err := seed.ToPhrase(english)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Generated mnemonic phrase:\n%s\n\n", phrase)

	// Decode it back, word by word
	decoded := mnemonic.NewWordSet()
	defer decoded.Free()

	for _, word := range mnemonic.SplitPhrase(phrase) {
		if err := decoded.AddWord(word, english); err != nil {
			fmt.Printf("Error adding word: %v\n", err)
			return
		}
	}

	if !decoded.IsFinalizable() {
		fmt.Println("phrase has an unsupported word count")
		return
	}

	entropy, err := decoded.ToEntropy()
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}

	fmt.Printf("Successfully decoded seed!\n")
	fmt.Printf("Entropy: %s\n", hex.EncodeToString(entropy))

	// Interactive entry helper: complete a word from its first letters
	matches, err := english.WordsByPrefix("aban")
	if err != nil {
		panic(err)
	}
	for _, elm := range matches {
		fmt.Printf("aban... -> %s (index %d)\n", elm.Word, elm.Bits11.Bits())
	}
}

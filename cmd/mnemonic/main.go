// mnemonic is a command-line tool for generating, checking and completing
// mnemonic phrases against the built-in English word table.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/complex-gh/mnemonic_go"
	"github.com/complex-gh/mnemonic_go/wordlist"
)

var log = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
}).With().Timestamp().Logger()

var english = wordlist.English{}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: mnemonic <command> [options]

Commands:
  generate [--words N]   generate a fresh phrase (12, 15, 18, 21 or 24 words)
  check    [--hidden]    read a phrase and verify its checksum
  decode   [--hidden]    read a phrase and print its entropy as hex
  complete PREFIX        list table words starting with PREFIX
`)
}

// memzero wipes a secret-bearing buffer
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// readPhrase reads a phrase from stdin. With hidden set and a terminal
// attached, input is read without echo so the phrase stays off the screen.
func readPhrase(hidden bool) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if hidden && term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Phrase: ")
		line, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return line, err
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	return []byte(strings.TrimSpace(line)), nil
}

func cmdGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	words := fs.Int("words", 24, "number of words in the phrase")
	fs.Parse(args)

	mt, err := mnemonic.MnemonicTypeFromWordCount(*words)
	if err != nil {
		log.Error().Int("words", *words).Msg("unsupported word count")
		return 1
	}

	w, err := mnemonic.Generate(mt)
	if err != nil {
		log.Error().Err(err).Msg("generate failed")
		return 1
	}
	defer w.Free()

	phrase, err := w.ToPhrase(english)
	if err != nil {
		log.Error().Err(err).Msg("encoding failed")
		return 1
	}

	fmt.Println(phrase)
	return 0
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	hidden := fs.Bool("hidden", false, "read the phrase without echoing it")
	fs.Parse(args)

	phrase, err := readPhrase(*hidden)
	if err != nil {
		log.Error().Err(err).Msg("reading phrase failed")
		return 1
	}
	defer memzero(phrase)

	if !mnemonic.Validate(string(phrase), english) {
		log.Error().Msg("phrase is not valid")
		return 1
	}
	log.Info().Int("words", len(strings.Fields(string(phrase)))).Msg("phrase is valid")
	return 0
}

func cmdDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	hidden := fs.Bool("hidden", false, "read the phrase without echoing it")
	fs.Parse(args)

	phrase, err := readPhrase(*hidden)
	if err != nil {
		log.Error().Err(err).Msg("reading phrase failed")
		return 1
	}
	defer memzero(phrase)

	w, err := mnemonic.FromPhrase(string(phrase), english)
	if err != nil {
		log.Error().Err(err).Msg("phrase rejected")
		return 1
	}
	defer w.Free()

	entropy, err := w.ToEntropy()
	if err != nil {
		log.Error().Err(err).Msg("phrase rejected")
		return 1
	}
	defer memzero(entropy)

	fmt.Println(hex.EncodeToString(entropy))
	return 0
}

func cmdComplete(args []string) int {
	if len(args) != 1 || args[0] == "" {
		usage()
		return 1
	}

	matches, err := english.WordsByPrefix(args[0])
	if err != nil {
		log.Error().Err(err).Msg("prefix search failed")
		return 1
	}
	if len(matches) == 0 {
		log.Warn().Str("prefix", args[0]).Msg("no matching words")
		return 1
	}

	for _, elm := range matches {
		fmt.Printf("%4d  %s\n", elm.Bits11.Bits(), elm.Word)
	}
	return 0
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "generate":
		code = cmdGenerate(os.Args[2:])
	case "check":
		code = cmdCheck(os.Args[2:])
	case "decode":
		code = cmdDecode(os.Args[2:])
	case "complete":
		code = cmdComplete(os.Args[2:])
	case "help", "-h", "--help":
		usage()
	default:
		log.Error().Str("command", os.Args[1]).Msg("unknown command")
		usage()
		code = 1
	}
	os.Exit(code)
}

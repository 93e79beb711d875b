package project

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// WordCount is the number of words drawn into a generated passphrase.
// Entropy is log2(len(wordList)) * WordCount bits; with the condensed
// list in wordlist.go that is well short of a true EFF-wordlist
// passphrase, so callers should not advertise a specific bit strength.
const WordCount = 10

// GeneratePassphrase returns a passphrase built from WordCount words drawn
// independently and uniformly at random from wordList, joined by spaces.
func GeneratePassphrase() (string, error) {
	words := make([]string, WordCount)
	for i := range words {
		w, err := randomWord()
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return strings.Join(words, " "), nil
}

func randomWord() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(wordList))))
	if err != nil {
		return "", err
	}
	return wordList[n.Int64()], nil
}

package game

import "strings"

// Classify returns the mark of the letter at pos in guess against secret.
// An exact-position match wins over presence elsewhere in the word. Every
// occurrence of a letter present in the secret is marked close, without
// counting how many times it occurs.
func Classify(secret, guess string, pos int) Mark {
	if secret == "" || pos < 0 || pos >= len(guess) {
		return MarkNone
	}
	letter := guess[pos]
	if pos < len(secret) && secret[pos] == letter {
		return MarkCorrect
	}
	if strings.IndexByte(secret, letter) >= 0 {
		return MarkClose
	}
	return MarkAbsent
}

// Marks classifies every position of guess.
func Marks(secret, guess string) [WordLength]Mark {
	var out [WordLength]Mark
	for i := range out {
		out[i] = Classify(secret, guess, i)
	}
	return out
}

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Length is the number of letters of every accepted word.
const Length = 5

// ErrEmptyWordList is returned when a source yields no usable word.
var ErrEmptyWordList = errors.New("word list is empty")

// Rejection records a line that was not a usable word.
type Rejection struct {
	Line   int
	Text   string
	Reason string
}

// ParseResult is the outcome of reading a word list.
type ParseResult struct {
	// Words are the accepted, lowercased and de-duplicated words in input order.
	Words      []string
	Rejected   []Rejection
	Duplicates int
}

// Parse reads one word per line. Lines are trimmed and lowercased; blank
// lines and lines starting with '#' are skipped. Anything that is not
// exactly five ASCII letters is rejected.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult
	var accepted []string

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if reason := rejectReason(w); reason != "" {
			result.Rejected = append(result.Rejected, Rejection{Line: line, Text: w, Reason: reason})
			continue
		}
		accepted = append(accepted, w)
	}
	if err := sc.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("failed to read word list: %w", err)
	}

	result.Words = lo.Uniq(accepted)
	result.Duplicates = len(accepted) - len(result.Words)
	return result, nil
}

func rejectReason(w string) string {
	if n := utf8.RuneCountInString(w); n != Length {
		return fmt.Sprintf("expected %d letters, got %d", Length, n)
	}
	if !isAlpha(w) {
		return "contains non-letter characters"
	}
	return ""
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Pick returns a uniformly chosen word. rng may be nil, in which case the
// global source is used.
func Pick(words []string, rng *rand.Rand) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	if rng == nil {
		return words[rand.Intn(len(words))], nil
	}
	return words[rng.Intn(len(words))], nil
}

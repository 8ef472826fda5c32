package solver

import "strings"

// Result is the answer to one query. It is built fresh for every call and
// shares no memory with the engine or the caller's dictionary slice.
type Result struct {
	// Input is the normalized pattern, unknown slots shown as Wildcard.
	Input string
	// InvalidLetters are the letters ruled out, sorted.
	InvalidLetters string
	// MatchingWordsCount counts every match, not only PossibleWords.
	MatchingWordsCount int
	LetterFrequency    []LetterCount
	PossibleWords      []string
	Mode               Mode
}

// Found reports whether at least one word matched.
func (r Result) Found() bool {
	return r.MatchingWordsCount > 0
}

// Truncated reports whether PossibleWords holds fewer words than matched.
func (r Result) Truncated() bool {
	return len(r.PossibleWords) < r.MatchingWordsCount
}

// FrequencyString joins the letter counts as "e: 3, r: 2".
func (r Result) FrequencyString() string {
	parts := make([]string, len(r.LetterFrequency))
	for i, lc := range r.LetterFrequency {
		parts[i] = lc.String()
	}
	return strings.Join(parts, ", ")
}

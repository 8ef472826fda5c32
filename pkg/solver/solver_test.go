package solver

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var fiveLetters = []string{
	"brand", "brave", "crane", "level", "lever", "apple", "bread",
	"reeds", "rover", "radar", "brace", "break", "creek", "cream",
}

func TestSolveExamples(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		pattern     string
		invalid     string
		maxWords    int
		wantWords   []string
		wantCount   int
	}{
		{"Known prefix", []string{"BRAND", "BRAVE", "CRANE"}, "BR???", "", 10, []string{"brand", "brave"}, 2},
		{"No match", []string{"APPLE"}, "ZZZZZ", "", 10, []string{}, 0},
		{"Repeated letter revealed", []string{"LEVEL"}, "L?V?L", "", 10, []string{"level"}, 1},
		{"Missing revealed occurrence", []string{"LEVER"}, "L?V?L", "", 10, []string{}, 0},
		{"Zero max words", []string{"BRAND", "BRAVE"}, "BR???", "", 0, []string{}, 2},
		{"Empty dictionary", nil, "?????", "", 10, []string{}, 0},
		{"Hash wildcard", []string{"BRAND", "BRAVE", "CRANE"}, "br###", "", 10, []string{"brand", "brave"}, 2},
		{"Mixed wildcards", []string{"BRAND", "BRAVE", "CRANE"}, "b#?-_", "", 10, []string{"brand", "brave"}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result, err := Solve(tc.words, tc.pattern, tc.invalid, tc.maxWords, false)
			require.NoError(t, err)
			assert.Equal(t, tc.wantWords, result.PossibleWords)
			assert.Equal(t, tc.wantCount, result.MatchingWordsCount)
		})
	}
}

func TestSolveCompletenessRule(t *testing.T) {
	// "r" is revealed at position 0 only, so words with another hidden r are out
	result, err := Solve(fiveLetters, "r____", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"reeds"}, result.PossibleWords)

	// "e" revealed twice must be exactly twice
	result, err = Solve(fiveLetters, "__ee_", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"creek"}, result.PossibleWords)
}

func TestSolveInvalidLetters(t *testing.T) {
	result, err := Solve(fiveLetters, "br___", "n, v", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"bread", "brace", "break"}, result.PossibleWords)
	assert.Equal(t, "nv", result.InvalidLetters)

	// a revealed letter listed as invalid is known to be present and dropped
	result, err = Solve(fiveLetters, "br___", "bvn", 10, false)
	require.NoError(t, err)
	assert.Equal(t, "nv", result.InvalidLetters)
	assert.Len(t, result.PossibleWords, 3)
}

func TestSolveLetterFrequency(t *testing.T) {
	result, err := Solve([]string{"BRAND", "BRAVE", "CRANE"}, "BR???", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []LetterCount{
		{'a', 2}, {'d', 1}, {'e', 1}, {'n', 1}, {'v', 1},
	}, result.LetterFrequency)
	assert.Equal(t, "a: 2, d: 1, e: 1, n: 1, v: 1", result.FrequencyString())
}

func TestSolveCrosswordMode(t *testing.T) {
	result, err := Solve([]string{"BRAND", "BRAVE", "CRANE"}, "?R???", "d", 10, true)
	require.NoError(t, err)
	assert.Equal(t, ModeCrossword, result.Mode)
	assert.Equal(t, []string{"brave", "crane"}, result.PossibleWords)
	for _, lc := range result.LetterFrequency {
		assert.NotEqual(t, 'r', lc.Letter)
		assert.NotEqual(t, 'd', lc.Letter)
	}
	assert.Equal(t, LetterCount{'a', 2}, result.LetterFrequency[0])
}

func TestSolveNormalization(t *testing.T) {
	words := []string{"Bäume\r", "  baume", "BÄUME", "bäumen"}
	result, err := Solve(words, "B ä - - E", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, "bä__e", result.Input)
	assert.Equal(t, []string{"bäume", "bäume"}, result.PossibleWords)

	// decomposed umlaut compares equal to the composed one
	result, err = Solve([]string{"ba\u0308ume"}, "bä???", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchingWordsCount)
}

func TestSolveErrors(t *testing.T) {
	testCases := []struct {
		description string
		pattern     string
		invalid     string
		maxWords    int
		want        error
	}{
		{"Digit in pattern", "ab1??", "", 10, ErrInvalidPattern},
		{"Symbol in pattern", "ab*??", "", 10, ErrInvalidPattern},
		{"Empty pattern", "   ", "", 10, ErrInvalidPattern},
		{"Digit in invalid letters", "ab???", "x7", 10, ErrInvalidLetters},
		{"Negative max words", "ab???", "", -1, ErrInvalidMaxWords},
		{"Bad pattern wins over negative max words", "ab1", "", -1, ErrInvalidPattern},
		{"Bad invalid letters win over negative max words", "ab???", "x7", -1, ErrInvalidLetters},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := Solve(fiveLetters, tc.pattern, tc.invalid, tc.maxWords, false)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolveSkipsNonLetterEntries(t *testing.T) {
	words := []string{"x-ray", "a_b_c", "w1234", "it's", "house"}
	result, err := Solve(words, "?????", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"house"}, result.PossibleWords)
	assert.Equal(t, 1, result.MatchingWordsCount)
	for _, lc := range result.LetterFrequency {
		assert.True(t, unicode.IsLetter(lc.Letter), string(lc.Letter))
	}

	result, err = Solve([]string{"x-ray", "a_b_c", "w1234"}, "?????", "", 10, true)
	require.NoError(t, err)
	assert.Zero(t, result.MatchingWordsCount)
	assert.Empty(t, result.LetterFrequency)
}

func TestSolveDottedCapitalI(t *testing.T) {
	result, err := Solve([]string{"İSTAN", "istan"}, "_____", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"istan", "istan"}, result.PossibleWords)

	result, err = Solve([]string{"istan"}, "İ____", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, "i____", result.Input)
	assert.Equal(t, 1, result.MatchingWordsCount)

	// Turkish casing keeps the dotted i as a single letter
	result, err = New(WithLanguage(language.Turkish)).Solve([]string{"İSTAN"}, "_____", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"istan"}, result.PossibleWords)
}

func TestSolveIndexMatchesSolve(t *testing.T) {
	s := New()
	idx := s.Index(append([]string{"BRAND", "Brand", "x-ray", "bran"}, fiveLetters...), 5)
	assert.Equal(t, 2, idx.Skipped())

	for _, pattern := range []string{"_____", "br___", "__e__", "cr___", "b#?-_", "z____"} {
		for _, invalid := range []string{"", "n", "aeiou"} {
			want, err := s.Solve(idx.Words(), pattern, invalid, 5, false)
			require.NoError(t, err)
			got, err := s.SolveIndex(idx, pattern, invalid, 5, false)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s/%s", pattern, invalid)
		}
	}
}

func TestSolveIndexLengthMismatch(t *testing.T) {
	s := New()
	idx := s.Index(fiveLetters, 5)

	result, err := s.SolveIndex(idx, "b__", "", 10, false)
	require.NoError(t, err)
	assert.Zero(t, result.MatchingWordsCount)
	assert.Empty(t, result.PossibleWords)

	result, err = s.SolveIndex(nil, "b____", "", 10, false)
	require.NoError(t, err)
	assert.Zero(t, result.MatchingWordsCount)

	_, err = s.SolveIndex(idx, "b1___", "", -1, false)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	_, err = s.SolveIndex(idx, "b____", "", -1, false)
	assert.ErrorIs(t, err, ErrInvalidMaxWords)
}

func TestSolveIndexConcurrent(t *testing.T) {
	s := New()
	idx := s.Index(fiveLetters, 5)
	want, err := s.SolveIndex(idx, "br___", "", 10, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.SolveIndex(idx, "br___", "", 10, false)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestSolveCustomWildcards(t *testing.T) {
	s := New(WithWildcards("*"), WithLanguage(language.German))
	result, err := s.Solve(fiveLetters, "br***", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, 5, result.MatchingWordsCount)

	_, err = s.Solve(fiveLetters, "br???", "", 10, false)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

// Every reported word has to pass the matcher, counts have to bound the list
// and the same input has to give the same answer.
func TestSolveInvariants(t *testing.T) {
	patterns := []string{"_____", "b____", "__e__", "r___r", "_r_a_", "c___k"}
	invalids := []string{"", "z", "aeiou", "st"}

	for _, pattern := range patterns {
		for _, invalid := range invalids {
			for _, crossword := range []bool{false, true} {
				name := fmt.Sprintf("%s/%s/%v", pattern, invalid, crossword)
				t.Run(name, func(t *testing.T) {
					first, err := Solve(fiveLetters, pattern, invalid, 3, crossword)
					require.NoError(t, err)
					second, err := Solve(fiveLetters, pattern, invalid, 3, crossword)
					require.NoError(t, err)
					assert.Equal(t, first, second)

					assert.LessOrEqual(t, len(first.PossibleWords), 3)
					assert.LessOrEqual(t, len(first.PossibleWords), first.MatchingWordsCount)

					p, err := CompilePattern(pattern, invalid)
					require.NoError(t, err)
					for _, w := range first.PossibleWords {
						assert.True(t, p.Matches(w), w)
					}
					for _, lc := range first.LetterFrequency {
						assert.False(t, p.IsKnown(lc.Letter), string(lc.Letter))
						assert.False(t, p.IsInvalid(lc.Letter), string(lc.Letter))
						assert.Positive(t, lc.Count)
					}
				})
			}
		}
	}
}

func TestSolveDoesNotModifyDictionary(t *testing.T) {
	words := []string{"BRAND", "BRAVE"}
	result, err := Solve(words, "br???", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"BRAND", "BRAVE"}, words)

	result.PossibleWords[0] = "xxxxx"
	again, err := Solve(words, "br???", "", 10, false)
	require.NoError(t, err)
	assert.Equal(t, "brand", again.PossibleWords[0])
}

func TestSolveConcurrent(t *testing.T) {
	s := New()
	want, err := s.Solve(fiveLetters, "_r___", "", 10, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.Solve(fiveLetters, "_r___", "", 10, false)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// benchmarkWords returns n random lower-case words of the given length.
func benchmarkWords(n, length int) []string {
	rng := rand.New(rand.NewSource(1))
	words := make([]string, n)
	buf := make([]byte, length)
	for i := range words {
		for j := range buf {
			buf[j] = byte('a' + rng.Intn(26))
		}
		words[i] = string(buf)
	}
	return words
}

func BenchmarkSolve(b *testing.B) {
	words := benchmarkWords(50000, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Solve(words, "ab___", "z", 10, false)
	}
}

func BenchmarkSolveIndex(b *testing.B) {
	s := New()
	idx := s.Index(benchmarkWords(50000, 5), 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.SolveIndex(idx, "ab___", "z", 10, false)
	}
}

func BenchmarkSolveIndexNoPrefix(b *testing.B) {
	s := New()
	idx := s.Index(benchmarkWords(50000, 5), 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.SolveIndex(idx, "___ab", "z", 10, false)
	}
}

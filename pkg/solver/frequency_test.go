package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterFrequencyModes(t *testing.T) {
	words := []string{"eerie", "eeler"}
	p, err := CompilePattern("ee__e", "")
	require.NoError(t, err)
	matched := p.Filter(words)
	require.Equal(t, []string{"eerie"}, matched)

	hangman := LetterFrequency(matched, p, ModeHangman)
	assert.Equal(t, []LetterCount{{'i', 1}, {'r', 1}}, hangman)

	crossword := LetterFrequency(matched, p, ModeCrossword)
	assert.Equal(t, hangman, crossword)
}

func TestLetterFrequencyCountsWordsOnce(t *testing.T) {
	p, err := CompilePattern("_____", "s")
	require.NoError(t, err)
	got := LetterFrequency([]string{"llama", "sassy", "aalto"}, p, ModeHangman)
	assert.Equal(t, []LetterCount{{'a', 3}, {'l', 2}, {'m', 1}, {'o', 1}, {'t', 1}, {'y', 1}}, got)
}

func TestLetterFrequencyScopes(t *testing.T) {
	// built by hand to show the scopes apart: the word is not a match
	p, err := CompilePattern("a____", "")
	require.NoError(t, err)
	words := []string{"xbcde"}

	hangman := LetterFrequency(words, p, ModeHangman)
	assert.Len(t, hangman, 4)
	crossword := LetterFrequency(words, p, ModeCrossword)
	assert.Len(t, crossword, 5)
	assert.Equal(t, LetterCount{'b', 1}, crossword[0])
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Crossword")
	assert.NoError(t, err)
	assert.Equal(t, ModeCrossword, m)
	assert.Equal(t, "crossword", m.String())

	m, err = ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, ModeHangman, m)

	_, err = ParseMode("scrabble")
	assert.Error(t, err)
	assert.Equal(t, ModeCrossword, ModeOf(true))
}

func TestLimitWords(t *testing.T) {
	words := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, LimitWords(words, 2))
	assert.Equal(t, words, LimitWords(words, 10))
	assert.Empty(t, LimitWords(words, 0))
}

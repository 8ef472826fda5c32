/*
Package wordlist acquires the word lists the solver works on.

Lists are newline-delimited text, one list per language and word length,
served under a base URL as

	{base_url}/{language}/{length}.txt

or read from a local .txt file. Fetched lists are kept in a small LRU cache
keyed by language and length, so repeated queries of one game do not hit
the network again.
*/
package wordlist

import (
	"errors"
	"slices"
	"strings"
)

// DefaultBaseURL serves the lists for every language in Languages.
const DefaultBaseURL = "https://asozial.org/hangman-loeser/worte"

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "de_umlauts"

// ErrUnknownLanguage is returned for language names outside Languages.
var ErrUnknownLanguage = errors.New("unknown language")

var languages = []string{"de", "de_umlauts", "en"}

// Languages returns the names of the available lists.
func Languages() []string {
	return slices.Clone(languages)
}

// NormalizeLanguage lower-cases name and maps "-" to "_", so "DE-Umlauts"
// names the same list as "de_umlauts".
func NormalizeLanguage(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// ValidLanguage reports whether name is one of Languages after normalizing.
func ValidLanguage(name string) bool {
	return slices.Contains(languages, NormalizeLanguage(name))
}

package solver

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// WordIndex holds the words of one list, normalized and restricted to a
// single length, together with a prefix trie over them. Input order is kept
// since it is the order results are reported in.
//
// A WordIndex is read-only once built and can be shared between goroutines.
type WordIndex struct {
	words   []string
	length  int
	skipped int
	trie    *patricia.Trie
}

// NewWordIndex keeps the words with exactly length letters, as given.
// Entries of any other length, or with anything but letters in them, are
// dropped without error.
func NewWordIndex(words []string, length int) *WordIndex {
	idx := newWordIndex(words, length, nil)
	idx.buildTrie()
	return idx
}

func newWordIndex(words []string, length int, n *normalizer) *WordIndex {
	idx := &WordIndex{
		words:  make([]string, 0, len(words)),
		length: length,
	}
	for _, w := range words {
		if n != nil {
			w = n.String(w)
		}
		if w == "" || utf8.RuneCountInString(w) != length || !lettersOnly(w) {
			idx.skipped++
			continue
		}
		idx.words = append(idx.words, w)
	}
	if idx.skipped > 0 {
		log.Debug("Dropped dictionary entries", "length", length, "skipped", idx.skipped)
	}
	return idx
}

func lettersOnly(w string) bool {
	return strings.IndexFunc(w, func(r rune) bool { return !unicode.IsLetter(r) }) < 0
}

// Len returns the number of indexed words.
func (idx *WordIndex) Len() int {
	return len(idx.words)
}

// Length returns the word length the index was built for.
func (idx *WordIndex) Length() int {
	return idx.length
}

// Skipped returns the number of input entries dropped for their length
// or for holding something other than letters.
func (idx *WordIndex) Skipped() int {
	return idx.skipped
}

// Words returns the indexed words in input order.
func (idx *WordIndex) Words() []string {
	return idx.words
}

// Candidates returns the words starting with prefix, in input order.
// An empty prefix, or an index built without a trie, returns every word.
func (idx *WordIndex) Candidates(prefix string) []string {
	if prefix == "" || idx.trie == nil {
		return idx.words
	}

	var positions []int
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
		return nil
	}

	sort.Ints(positions)
	candidates := make([]string, len(positions))
	for i, pos := range positions {
		candidates[i] = idx.words[pos]
	}
	return candidates
}

// buildTrie maps every word to the positions it occupies in idx.words,
// so duplicates in the dictionary survive the narrowing.
func (idx *WordIndex) buildTrie() {
	idx.trie = patricia.NewTrie()
	for i, w := range idx.words {
		key := patricia.Prefix(w)
		if item := idx.trie.Get(key); item != nil {
			idx.trie.Set(key, append(item.([]int), i))
			continue
		}
		idx.trie.Insert(key, []int{i})
	}
}

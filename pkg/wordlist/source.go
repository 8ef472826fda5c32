package wordlist

import (
	"context"
	"fmt"
	"sync"

	"github.com/bastiangx/wordsolve/pkg/solver"
)

// ListFetcher downloads one list.
type ListFetcher interface {
	Fetch(ctx context.Context, language string, length int) ([]string, error)
}

// Indexer turns a raw list into a searchable index, see solver.Solver.Index.
type Indexer interface {
	Index(words []string, length int) *solver.WordIndex
}

// Source hands out indexed lists, fetching and indexing them on a cache miss.
type Source struct {
	fetcher ListFetcher
	indexer Indexer
	cache   *Cache
}

// NewSource combines fetcher, cache and indexer. cache may be nil.
func NewSource(fetcher ListFetcher, cache *Cache, indexer Indexer) *Source {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Source{fetcher: fetcher, indexer: indexer, cache: cache}
}

// Index returns the index of the words with length letters for language.
func (s *Source) Index(ctx context.Context, language string, length int) (*solver.WordIndex, error) {
	language = NormalizeLanguage(language)
	if !ValidLanguage(language) {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownLanguage, language, languages)
	}
	if length < 1 {
		return nil, fmt.Errorf("invalid word length %d", length)
	}

	if idx, ok := s.cache.Get(language, length); ok {
		return idx, nil
	}
	words, err := s.fetcher.Fetch(ctx, language, length)
	if err != nil {
		return nil, err
	}
	idx := s.indexer.Index(words, length)
	s.cache.Put(language, length, idx)
	return idx, nil
}

// Stats returns the cache counters.
func (s *Source) Stats() map[string]int {
	return s.cache.Stats()
}

// StaticSource serves one fixed list for every language. Each word length
// is indexed on first use and kept.
type StaticSource struct {
	words   []string
	indexer Indexer

	mu      sync.Mutex
	indexes map[int]*solver.WordIndex
}

// NewStaticSource wraps a list loaded up front, e.g. with LoadFile.
func NewStaticSource(words []string, indexer Indexer) *StaticSource {
	return &StaticSource{
		words:   words,
		indexer: indexer,
		indexes: make(map[int]*solver.WordIndex),
	}
}

// Index returns the index of the list's words with length letters.
// language is ignored.
func (s *StaticSource) Index(_ context.Context, _ string, length int) (*solver.WordIndex, error) {
	if length < 1 {
		return nil, fmt.Errorf("invalid word length %d", length)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.indexes[length]
	if !ok {
		idx = s.indexer.Index(s.words, length)
		s.indexes[length] = idx
	}
	return idx, nil
}

// Stats reports the list size and how many lengths are indexed.
func (s *StaticSource) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"staticWords":    len(s.words),
		"indexedLengths": len(s.indexes),
	}
}

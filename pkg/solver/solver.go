package solver

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// Solver runs queries. It keeps only settings, so one Solver can be
// shared by any number of goroutines.
type Solver struct {
	lang      language.Tag
	wildcards string
}

// Option configures a Solver.
type Option func(*Solver)

// WithLanguage sets the language whose casing rules normalize words and patterns.
func WithLanguage(tag language.Tag) Option {
	return func(s *Solver) {
		s.lang = tag
	}
}

// WithWildcards replaces the accepted unknown-slot markers.
// An empty string keeps DefaultWildcards.
func WithWildcards(markers string) Option {
	return func(s *Solver) {
		if markers != "" {
			s.wildcards = markers
		}
	}
}

// New creates a Solver. It is meant to be created once and reused.
func New(opts ...Option) *Solver {
	s := &Solver{
		lang:      language.Und,
		wildcards: DefaultWildcards,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSolver = New()

// Solve runs a query with the default Solver.
func Solve(words []string, pattern, invalidLetters string, maxWords int, crosswordMode bool) (Result, error) {
	return defaultSolver.Solve(words, pattern, invalidLetters, maxWords, crosswordMode)
}

// Compile normalizes and compiles pattern and invalidLetters the way Solve
// does, so callers can learn the word length before fetching a list.
func (s *Solver) Compile(pattern, invalidLetters string) (*Pattern, error) {
	return s.compile(newNormalizer(s.lang), pattern, invalidLetters)
}

func (s *Solver) compile(n *normalizer, pattern, invalidLetters string) (*Pattern, error) {
	return compilePattern(n.String(pattern), n.String(invalidLetters), s.wildcards)
}

// Index normalizes words the way Solve does and builds a WordIndex over
// the ones with length letters. Build it once per word list and pass it to
// SolveIndex for every query against that list.
func (s *Solver) Index(words []string, length int) *WordIndex {
	idx := newWordIndex(words, length, newNormalizer(s.lang))
	idx.buildTrie()
	return idx
}

// Solve matches words against pattern and invalidLetters.
//
// Words of another length than the pattern are ignored. An empty dictionary
// or no match at all is a valid Result with MatchingWordsCount 0; errors
// are only returned for malformed input.
func (s *Solver) Solve(words []string, pattern, invalidLetters string, maxWords int, crosswordMode bool) (Result, error) {
	start := time.Now()
	n := newNormalizer(s.lang)
	p, err := s.compile(n, pattern, invalidLetters)
	if err != nil {
		return Result{}, err
	}
	if maxWords < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidMaxWords, maxWords)
	}

	// raw lists are scanned linearly, see Index for repeated queries
	idx := newWordIndex(words, p.Len(), n)
	return s.result(p, idx.Len(), p.Filter(idx.Words()), maxWords, crosswordMode, start), nil
}

// SolveIndex is Solve against a prebuilt index. Only the words sharing the
// pattern's leading known letters are tested. An index built for another
// length than the pattern's yields no matches.
func (s *Solver) SolveIndex(idx *WordIndex, pattern, invalidLetters string, maxWords int, crosswordMode bool) (Result, error) {
	start := time.Now()
	p, err := s.Compile(pattern, invalidLetters)
	if err != nil {
		return Result{}, err
	}
	if maxWords < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidMaxWords, maxWords)
	}

	var candidates []string
	if idx != nil && idx.Length() == p.Len() {
		candidates = idx.Candidates(p.Prefix())
	}
	return s.result(p, len(candidates), p.Filter(candidates), maxWords, crosswordMode, start), nil
}

func (s *Solver) result(p *Pattern, candidates int, matched []string, maxWords int, crosswordMode bool, start time.Time) Result {
	mode := ModeOf(crosswordMode)
	result := Result{
		Input:              p.String(),
		InvalidLetters:     p.InvalidLetters(),
		MatchingWordsCount: len(matched),
		LetterFrequency:    LetterFrequency(matched, p, mode),
		PossibleWords:      LimitWords(matched, maxWords),
		Mode:               mode,
	}

	log.Debug("Solved pattern",
		"input", result.Input,
		"invalid", result.InvalidLetters,
		"mode", mode,
		"candidates", candidates,
		"matches", result.MatchingWordsCount,
		"took", time.Since(start))
	return result
}

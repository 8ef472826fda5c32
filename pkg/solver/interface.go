// Package solver is the core, matching partially revealed words against a dictionary and ranking the letters left to guess.
package solver

// ISolver defines the interface for word pattern solvers
type ISolver interface {
	// Solve filters words against pattern and invalidLetters and
	// returns at most maxWords of the matches
	Solve(words []string, pattern, invalidLetters string, maxWords int, crosswordMode bool) (Result, error)

	// Compile validates pattern and invalidLetters without solving,
	// e.g. to learn the word length
	Compile(pattern, invalidLetters string) (*Pattern, error)

	// Index builds a reusable WordIndex over the words of one length
	Index(words []string, length int) *WordIndex

	// SolveIndex is Solve against an index built by Index
	SolveIndex(idx *WordIndex, pattern, invalidLetters string, maxWords int, crosswordMode bool) (Result, error)
}

var _ ISolver = (*Solver)(nil)

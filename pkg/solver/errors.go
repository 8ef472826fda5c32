package solver

import "errors"

var (
	// ErrInvalidPattern is returned for empty patterns and patterns holding
	// anything other than letters, wildcard markers and whitespace.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidLetters is returned when the invalid-letter string holds
	// something other than letters and separators.
	ErrInvalidLetters = errors.New("invalid letters")

	// ErrInvalidMaxWords is returned for a negative word limit.
	ErrInvalidMaxWords = errors.New("max words must not be negative")
)

package solver

// LimitWords returns a copy of the first max words.
// max must not be negative.
func LimitWords(words []string, max int) []string {
	n := min(max, len(words))
	out := make([]string, n)
	copy(out, words[:n])
	return out
}

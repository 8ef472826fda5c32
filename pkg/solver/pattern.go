package solver

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"
)

// Wildcard is the normalized marker for an unknown slot.
const Wildcard = '_'

// DefaultWildcards are the markers accepted for unknown slots.
const DefaultWildcards = "_?#-"

// Pattern is a compiled pattern together with its invalid letters.
type Pattern struct {
	slots     []rune
	unknown   *bitset.BitSet
	positions map[rune]*bitset.BitSet
	invalid   map[rune]struct{}
}

// CompilePattern parses raw and invalidLetters into a Pattern.
// Both strings are expected to be normalized already.
func CompilePattern(raw, invalidLetters string) (*Pattern, error) {
	return compilePattern(raw, invalidLetters, DefaultWildcards)
}

func compilePattern(raw, invalidLetters, wildcards string) (*Pattern, error) {
	p := &Pattern{
		positions: make(map[rune]*bitset.BitSet),
		invalid:   make(map[rune]struct{}),
	}

	for i, r := range raw {
		switch {
		case unicode.IsSpace(r):
			continue
		case strings.ContainsRune(wildcards, r):
			p.slots = append(p.slots, Wildcard)
		case unicode.IsLetter(r):
			p.slots = append(p.slots, r)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at byte %d", ErrInvalidPattern, r, i)
		}
	}
	if len(p.slots) == 0 {
		return nil, fmt.Errorf("%w: no letters or wildcards", ErrInvalidPattern)
	}

	p.unknown = bitset.New(uint(len(p.slots)))
	for i, r := range p.slots {
		if r == Wildcard {
			p.unknown.Set(uint(i))
			continue
		}
		set, ok := p.positions[r]
		if !ok {
			set = bitset.New(uint(len(p.slots)))
			p.positions[r] = set
		}
		set.Set(uint(i))
	}

	for i, r := range invalidLetters {
		switch {
		case unicode.IsSpace(r), r == ',', strings.ContainsRune(wildcards, r):
			continue
		case !unicode.IsLetter(r):
			return nil, fmt.Errorf("%w: unexpected %q at byte %d", ErrInvalidLetters, r, i)
		}
		// a revealed letter is known to be present
		if _, fixed := p.positions[r]; fixed {
			continue
		}
		p.invalid[r] = struct{}{}
	}
	return p, nil
}

// Len returns the number of slots, which is the required word length.
func (p *Pattern) Len() int {
	return len(p.slots)
}

// String returns the pattern with unknown slots as Wildcard.
func (p *Pattern) String() string {
	return string(p.slots)
}

// Prefix returns the fixed letters before the first unknown slot.
func (p *Pattern) Prefix() string {
	end := len(p.slots)
	if i, ok := p.unknown.NextSet(0); ok {
		end = int(i)
	}
	return string(p.slots[:end])
}

// InvalidLetters returns the invalid letters sorted and without duplicates.
func (p *Pattern) InvalidLetters() string {
	letters := lo.Keys(p.invalid)
	slices.Sort(letters)
	return string(letters)
}

// KnownLetters returns the distinct fixed letters in rune order.
func (p *Pattern) KnownLetters() string {
	letters := lo.Keys(p.positions)
	slices.Sort(letters)
	return string(letters)
}

// Unknown returns the positions of the unknown slots.
func (p *Pattern) Unknown() []int {
	out := make([]int, 0, p.unknown.Count())
	for i, ok := p.unknown.NextSet(0); ok; i, ok = p.unknown.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// IsKnown reports whether r is fixed somewhere in the pattern.
func (p *Pattern) IsKnown(r rune) bool {
	_, ok := p.positions[r]
	return ok
}

// IsInvalid reports whether r is one of the invalid letters.
func (p *Pattern) IsInvalid(r rune) bool {
	_, ok := p.invalid[r]
	return ok
}

// Matches reports whether word fits the pattern:
// every fixed slot holds its letter, a fixed letter appears nowhere but
// at its own slots, and no unknown slot holds an invalid letter.
func (p *Pattern) Matches(word string) bool {
	pos := 0
	for _, r := range word {
		if pos >= len(p.slots) {
			return false
		}
		if want, ok := p.positions[r]; ok {
			if !want.Test(uint(pos)) {
				return false
			}
		} else if !p.unknown.Test(uint(pos)) {
			return false
		} else if _, bad := p.invalid[r]; bad {
			return false
		}
		pos++
	}
	return pos == len(p.slots)
}

// Filter returns the words that match, in their given order.
func (p *Pattern) Filter(words []string) []string {
	matched := make([]string, 0)
	for _, w := range words {
		if p.Matches(w) {
			matched = append(matched, w)
		}
	}
	return matched
}

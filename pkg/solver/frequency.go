package solver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Mode selects which letters of a matched word are counted.
type Mode int

const (
	// ModeHangman counts letters at the unknown slots only.
	ModeHangman Mode = iota
	// ModeCrossword counts letters anywhere in the word.
	ModeCrossword
)

// ModeOf maps the crossword toggle to a Mode.
func ModeOf(crossword bool) Mode {
	if crossword {
		return ModeCrossword
	}
	return ModeHangman
}

func (m Mode) String() string {
	switch m {
	case ModeHangman:
		return "hangman"
	case ModeCrossword:
		return "crossword"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode accepts the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hangman", "":
		return ModeHangman, nil
	case "crossword":
		return ModeCrossword, nil
	}
	return ModeHangman, fmt.Errorf("unknown mode %q", s)
}

// LetterCount is the number of matched words a letter was counted in.
type LetterCount struct {
	Letter rune
	Count  int
}

func (lc LetterCount) String() string {
	return string(lc.Letter) + ": " + strconv.Itoa(lc.Count)
}

// LetterFrequency counts, for every letter that is neither fixed in p nor
// invalid, how many of words contain it. Each word counts once per letter.
// Letters are ranked by count, highest first, then by rune.
func LetterFrequency(words []string, p *Pattern, mode Mode) []LetterCount {
	counts := make(map[rune]int)
	seen := make(map[rune]struct{}, p.Len())

	for _, w := range words {
		clear(seen)
		pos := 0
		for _, r := range w {
			slot := pos
			pos++
			if mode == ModeHangman && !p.unknown.Test(uint(slot)) {
				continue
			}
			if p.IsKnown(r) || p.IsInvalid(r) {
				continue
			}
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			counts[r]++
		}
	}

	ranked := lo.MapToSlice(counts, func(letter rune, count int) LetterCount {
		return LetterCount{Letter: letter, Count: count}
	})
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Letter < ranked[j].Letter
	})
	return ranked
}

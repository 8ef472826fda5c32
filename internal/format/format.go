// Package format renders solver results for terminals.
package format

import (
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

const (
	wordsLabel   = " words:   "
	lettersLabel = " letters: "
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	emptyStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
)

// Formatter renders a solver.Result in at most Width columns per line.
type Formatter struct {
	Width  int
	Styled bool
}

// New creates a Formatter. Widths too small to hold a label fall back to DefaultWidth.
func New(width int, styled bool) *Formatter {
	if width <= len(wordsLabel)+3 {
		width = DefaultWidth
	}
	return &Formatter{Width: width, Styled: styled}
}

// ForTerminal sizes a Formatter to the terminal on f, styling output
// only when f is a terminal.
func ForTerminal(f *os.File) *Formatter {
	fd := f.Fd()
	if !term.IsTerminal(fd) {
		return New(DefaultWidth, false)
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return New(DefaultWidth, true)
	}
	return New(width, true)
}

// Format renders r as a header line followed by the word and letter lines.
// When maxWords cut the list, the word line ends with "(shown of total)".
func (f *Formatter) Format(r solver.Result) string {
	var b strings.Builder
	count := utils.FormatWithCommas(r.MatchingWordsCount)
	if f.Styled {
		count = countStyle.Render(count)
	}
	fmt.Fprintf(&b, "Found %s words (input: %s, invalid: %s)", count, r.Input, r.InvalidLetters)

	if !r.Found() {
		b.WriteString("\n")
		b.WriteString(f.style(emptyStyle, " Nothing found"))
		return b.String()
	}

	if len(r.PossibleWords) > 0 {
		room := f.Width - len(wordsLabel)
		var shown string
		if r.Truncated() {
			shown = fmt.Sprintf(" (%d of %s)", len(r.PossibleWords), utils.FormatWithCommas(r.MatchingWordsCount))
			if room-len(shown) < 3 {
				shown = ""
			}
			room -= len(shown)
		}
		b.WriteString("\n")
		b.WriteString(f.style(labelStyle, wordsLabel))
		b.WriteString(utils.JoinWithMaxLength(r.PossibleWords, ", ", room))
		b.WriteString(f.style(emptyStyle, shown))
	}

	if len(r.LetterFrequency) > 0 {
		letters := make([]string, len(r.LetterFrequency))
		for i, lc := range r.LetterFrequency {
			letters[i] = lc.String()
		}
		b.WriteString("\n")
		b.WriteString(f.style(labelStyle, lettersLabel))
		b.WriteString(utils.JoinWithMaxLength(letters, ", ", f.Width-len(lettersLabel)))
	}
	return b.String()
}

func (f *Formatter) style(s lipgloss.Style, text string) string {
	if !f.Styled {
		return text
	}
	return s.Render(text)
}

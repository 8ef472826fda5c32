// Package cli is the interactive and batch front end for the solver.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordsolve/internal/format"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/bastiangx/wordsolve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

const helpText = `Enter PATTERN [INVALID], e.g.  br___ st   or   "b r _ _ _" st
  _ ? # -          unknown letter
  :mode NAME       hangman or crossword
  :max N           words to show
  :lang NAME       word list language
  :help            this text
  :quit            leave`

// WordSource hands out indexed word lists by language and length.
type WordSource interface {
	Index(ctx context.Context, language string, length int) (*solver.WordIndex, error)
}

// Settings are the query defaults a session starts with.
type Settings struct {
	Language  string
	MaxWords  int
	Crossword bool
}

// InputHandler reads queries, solves them and prints the formatted results.
// Settings can be changed between queries with the colon commands.
type InputHandler struct {
	solver       solver.ISolver
	source       WordSource
	formatter    *format.Formatter
	settings     Settings
	out          io.Writer
	requestCount int
}

// NewInputHandler creates a handler printing to stdout.
func NewInputHandler(s solver.ISolver, source WordSource, f *format.Formatter, settings Settings) *InputHandler {
	return &InputHandler{
		solver:    s,
		source:    source,
		formatter: f,
		settings:  settings,
		out:       os.Stdout,
	}
}

// Settings returns the current query defaults.
func (h *InputHandler) Settings() Settings {
	return h.settings
}

// Solve looks up the list matching the pattern's length and runs one query
// with the current settings.
func (h *InputHandler) Solve(ctx context.Context, pattern, invalid string) (solver.Result, error) {
	p, err := h.solver.Compile(pattern, invalid)
	if err != nil {
		return solver.Result{}, err
	}
	idx, err := h.source.Index(ctx, h.settings.Language, p.Len())
	if err != nil {
		return solver.Result{}, err
	}
	return h.solver.SolveIndex(idx, pattern, invalid, h.settings.MaxWords, h.settings.Crossword)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func completer() *readline.PrefixCompleter {
	langs := lo.Map(wordlist.Languages(), func(name string, _ int) readline.PrefixCompleterInterface {
		return readline.PcItem(name)
	})
	return readline.NewPrefixCompleter(
		readline.PcItem(":mode", readline.PcItem("hangman"), readline.PcItem("crossword")),
		readline.PcItem(":max"),
		readline.PcItem(":lang", langs...),
		readline.PcItem(":help"),
		readline.PcItem(":quit"),
	)
}

// Start runs the readline loop until :quit, Ctrl+D or Ctrl+C on an empty line.
// historyFile may be empty to keep no history.
func (h *InputHandler) Start(ctx context.Context, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "\033[36mwordsolve>\033[0m ",
		HistoryFile:         historyFile,
		AutoComplete:        completer(),
		EOFPrompt:           "exit",
		InterruptPrompt:     "^C",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer l.Close()
	h.out = l.Stdout()

	fmt.Fprintln(h.out, "WordSolve CLI, :help for commands (Ctrl+D to exit)")
	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		quit, err := h.handleLine(ctx, line)
		if err != nil {
			log.Error(err)
		}
		if quit {
			log.Debug("Exiting readline loop", "requests", h.requestCount)
			return nil
		}
	}
}

// handleLine runs one command or query. It reports whether the session should end.
func (h *InputHandler) handleLine(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(fields) == 0 {
		return false, nil
	}
	if strings.HasPrefix(fields[0], ":") {
		return h.command(fields[0], fields[1:])
	}

	pattern, invalid, err := splitQuery(fields)
	if err != nil {
		return false, err
	}
	h.requestCount++
	start := time.Now()
	result, err := h.Solve(ctx, pattern, invalid)
	if err != nil {
		return false, err
	}
	log.Debugf("Took [ %v ] for pattern '%s'", time.Since(start), pattern)
	fmt.Fprintln(h.out, h.formatter.Format(result))
	return false, nil
}

func splitQuery(fields []string) (pattern, invalid string, err error) {
	switch len(fields) {
	case 1:
		return fields[0], "", nil
	case 2:
		return fields[0], fields[1], nil
	default:
		return "", "", fmt.Errorf("expected PATTERN [INVALID], got %d fields", len(fields))
	}
}

func (h *InputHandler) command(name string, args []string) (bool, error) {
	switch name {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":help", ":h":
		fmt.Fprintln(h.out, helpText)
	case ":mode":
		if len(args) > 0 {
			mode, err := solver.ParseMode(args[0])
			if err != nil {
				return false, err
			}
			h.settings.Crossword = mode == solver.ModeCrossword
		}
		fmt.Fprintf(h.out, "mode: %s\n", solver.ModeOf(h.settings.Crossword))
	case ":max":
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return false, fmt.Errorf("%w: %q", solver.ErrInvalidMaxWords, args[0])
			}
			h.settings.MaxWords = n
		}
		fmt.Fprintf(h.out, "max: %d\n", h.settings.MaxWords)
	case ":lang":
		if len(args) > 0 {
			if !wordlist.ValidLanguage(args[0]) {
				return false, fmt.Errorf("%w: %q (valid: %s)", wordlist.ErrUnknownLanguage, args[0],
					strings.Join(wordlist.Languages(), ", "))
			}
			h.settings.Language = wordlist.NormalizeLanguage(args[0])
		}
		fmt.Fprintf(h.out, "lang: %s\n", h.settings.Language)
	default:
		return false, fmt.Errorf("unknown command %s, try :help", name)
	}
	return false, nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordsolve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Batch solves every PATTERN [INVALID] line of r with up to workers queries
// in flight and writes the results to w in input order. Blank lines and
// comments are skipped. A failing line is reported in place; the returned
// error counts the failures.
func (h *InputHandler) Batch(ctx context.Context, r io.Reader, w io.Writer, workers int) error {
	lines, err := wordlist.ParseList(r)
	if err != nil {
		return fmt.Errorf("reading batch input: %w", err)
	}
	queries := make([]string, 0, len(lines))
	for _, line := range lines {
		if !isComment(line) {
			queries = append(queries, line)
		}
	}
	if workers < 1 {
		workers = 1
	}

	outputs := make([]string, len(queries))
	failed := make([]bool, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, query := range queries {
		i, query := i, query // per-iteration copies (go directive is below 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := h.solveLine(gctx, query)
			if err != nil {
				log.Debug("Batch query failed", "line", query, "err", err)
				outputs[i] = fmt.Sprintf("%s: error: %v", query, err)
				failed[i] = true
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, out)
	}

	if n := lo.Count(failed, true); n > 0 {
		return fmt.Errorf("%d of %d queries failed", n, len(queries))
	}
	return nil
}

// isComment reports whether line is a "# ..." comment. # is also a
// wildcard, so "#r###" is a query; a query with a spaced leading # has to
// be quoted.
func isComment(line string) bool {
	rest, ok := strings.CutPrefix(line, "#")
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

func (h *InputHandler) solveLine(ctx context.Context, line string) (string, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return "", err
	}
	pattern, invalid, err := splitQuery(fields)
	if err != nil {
		return "", err
	}
	result, err := h.Solve(ctx, pattern, invalid)
	if err != nil {
		return "", err
	}
	return h.formatter.Format(result), nil
}

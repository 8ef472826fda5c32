package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/bastiangx/wordsolve/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// WordSource hands out indexed word lists by language and length.
type WordSource interface {
	Index(ctx context.Context, language string, length int) (*solver.WordIndex, error)
	Stats() map[string]int
}

// Server handles the msgpack IPC for solve requests
type Server struct {
	solver       solver.ISolver
	source       WordSource
	config       *config.Config
	dec          *msgpack.Decoder
	out          *bufio.Writer
	enc          *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a new server using stdin/stdout for IPC
func NewServer(s solver.ISolver, source WordSource, cfg *config.Config) *Server {
	return NewServerWithIO(s, source, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on the given streams
func NewServerWithIO(s solver.ISolver, source WordSource, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		solver: s,
		source: source,
		config: cfg,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		out:    out,
		enc:    msgpack.NewEncoder(out),
		logger: logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected (EOF)", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading from stdin: %v", err)
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.requestCount++
		if err := s.handleRequest(ctx, raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and writes exactly one response.
// Only write failures are returned.
func (s *Server) handleRequest(ctx context.Context, raw msgpack.RawMessage) error {
	var req SolveRequest
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}

	switch req.Action {
	case "", ActionSolve:
		return s.handleSolve(ctx, req)
	case ActionStats:
		return s.send(StatsResponse{
			ID:       req.ID,
			Status:   "ok",
			Requests: s.requestCount,
			Stats:    s.source.Stats(),
		})
	case ActionPing:
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleSolve(ctx context.Context, req SolveRequest) error {
	maxWords := s.config.Server.DefaultMaxWords
	if req.MaxWords != nil {
		maxWords = *req.MaxWords
	}
	if limit := s.config.Server.MaxWordsLimit; limit > 0 && maxWords > limit {
		s.logger.Debug("Clamping max words", "requested", maxWords, "limit", limit)
		maxWords = limit
	}
	crossword := s.config.Solver.Crossword
	if req.Crossword != nil {
		crossword = *req.Crossword
	}

	start := time.Now()
	var result solver.Result
	var err error
	if req.Words != nil {
		result, err = s.solver.Solve(req.Words, req.Pattern, req.Invalid, maxWords, crossword)
	} else {
		var p *solver.Pattern
		p, err = s.solver.Compile(req.Pattern, req.Invalid)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 400)
		}
		language := req.Language
		if language == "" {
			language = s.config.WordList.DefaultLanguage
		}
		var idx *solver.WordIndex
		idx, err = s.source.Index(ctx, language, p.Len())
		if err != nil {
			s.logger.Warn("Word list unavailable", "id", req.ID, "language", language, "err", err)
			if errors.Is(err, wordlist.ErrUnknownLanguage) {
				return s.sendError(req.ID, err.Error(), 400)
			}
			return s.sendError(req.ID, err.Error(), 502)
		}
		result, err = s.solver.SolveIndex(idx, req.Pattern, req.Invalid, maxWords, crossword)
	}
	if err != nil {
		return s.sendError(req.ID, err.Error(), 400)
	}
	elapsed := time.Since(start)
	s.logger.Debug("Solved", "id", req.ID, "matches", result.MatchingWordsCount, "took", elapsed)
	return s.send(newSolveResponse(req.ID, result, elapsed.Microseconds()))
}

func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return err
	}
	return s.out.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(SolveError{ID: id, Error: message, Code: code})
}

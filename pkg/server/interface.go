/*
Package server implements msgpack IPC for the pattern solver.

The server reads a stream of msgpack values from stdin and writes one msgpack
value per request to stdout. Logs go to stderr.

# IPC

On start the server announces itself:

	{"id": "", "status": "ready"}

A solve request names the pattern, the letters known to be absent and the
list to search:

	{"id": "req_001", "p": "br___", "i": "st", "l": "en", "m": 5}

The server responds with the total match count, the ranked letters and at
most m words:

	{"id": "req_001", "in": "br___", "inv": "st", "c": 2,
	 "f": [{"l": "a", "c": 2}, {"l": "d", "c": 1}], "w": ["brand", "brave"], "t": 145}

"t" is the time taken in microseconds. Setting "x" to true counts letters
over whole words (crossword mode). A request may carry its own list in
"words"; the language is ignored then and nothing is fetched.

Other actions:

	{"id": "s1", "action": "stats"}
	{"id": "p1", "action": "ping"}

Failures are reported as

	{"id": "req_001", "e": "invalid pattern: unexpected '1' at byte 2", "c": 400}

with code 400 for malformed requests and 502 when a list could not be fetched.
*/
package server

import "github.com/bastiangx/wordsolve/pkg/solver"

// Actions understood besides solving.
const (
	ActionSolve = "solve"
	ActionStats = "stats"
	ActionPing  = "ping"
)

// SolveRequest - one query; Action defaults to solve
type SolveRequest struct {
	ID        string   `msgpack:"id"`
	Action    string   `msgpack:"action,omitempty"`
	Pattern   string   `msgpack:"p"`
	Invalid   string   `msgpack:"i,omitempty"`
	Language  string   `msgpack:"l,omitempty"`
	MaxWords  *int     `msgpack:"m,omitempty"`
	Crossword *bool    `msgpack:"x,omitempty"`
	Words     []string `msgpack:"words,omitempty"`
}

// LetterFrequency - one ranked letter
type LetterFrequency struct {
	Letter string `msgpack:"l"`
	Count  int    `msgpack:"c"`
}

// SolveResponse - solve result
type SolveResponse struct {
	ID        string            `msgpack:"id"`
	Input     string            `msgpack:"in"`
	Invalid   string            `msgpack:"inv"`
	Count     int               `msgpack:"c"`
	Frequency []LetterFrequency `msgpack:"f"`
	Words     []string          `msgpack:"w"`
	TimeTaken int64             `msgpack:"t"`
}

// StatusResponse - readiness and ping answers
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// StatsResponse - word list cache counters
type StatsResponse struct {
	ID       string         `msgpack:"id"`
	Status   string         `msgpack:"status"`
	Requests int            `msgpack:"requests"`
	Stats    map[string]int `msgpack:"stats"`
}

// SolveError holds basic error information for failed requests
type SolveError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

func newSolveResponse(id string, r solver.Result, micros int64) SolveResponse {
	freq := make([]LetterFrequency, len(r.LetterFrequency))
	for i, lc := range r.LetterFrequency {
		freq[i] = LetterFrequency{Letter: string(lc.Letter), Count: lc.Count}
	}
	return SolveResponse{
		ID:        id,
		Input:     r.Input,
		Invalid:   r.InvalidLetters,
		Count:     r.MatchingWordsCount,
		Frequency: freq,
		Words:     r.PossibleWords,
		TimeTaken: micros,
	}
}

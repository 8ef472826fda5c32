package wordlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when the server has no list for a language and length.
var ErrNotFound = errors.New("word list not found")

// StatusError is returned for unexpected HTTP statuses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Temporary reports whether another attempt could succeed.
func (e *StatusError) Temporary() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

// Fetcher downloads word lists over HTTP.
type Fetcher struct {
	baseURL  string
	client   *http.Client
	attempts uint
	delay    time.Duration
}

// NewFetcher creates a Fetcher for baseURL. attempts below 1 mean a single try.
func NewFetcher(baseURL string, timeout time.Duration, attempts int, delay time.Duration) *Fetcher {
	if attempts < 1 {
		attempts = 1
	}
	return &Fetcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		attempts: uint(attempts),
		delay:    delay,
	}
}

// URL returns where the list for language and length is served.
func (f *Fetcher) URL(language string, length int) string {
	return f.baseURL + "/" + url.PathEscape(language) + "/" + strconv.Itoa(length) + ".txt"
}

// Fetch downloads the list for language and length. Server errors and
// network failures are retried; a missing list is not.
func (f *Fetcher) Fetch(ctx context.Context, language string, length int) ([]string, error) {
	target := f.URL(language, length)

	words, err := retry.DoWithData(
		func() ([]string, error) {
			return f.get(ctx, target)
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				return statusErr.Temporary()
			}
			return !errors.Is(err, ErrNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Debug("Retrying word list fetch", "url", target, "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching %s list of length %d: %w", language, length, err)
	}
	log.Debug("Fetched word list", "url", target, "words", len(words))
	return words, nil
}

func (f *Fetcher) get(ctx context.Context, target string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, target)
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{URL: target, Code: resp.StatusCode}
	}
	return ParseList(resp.Body)
}

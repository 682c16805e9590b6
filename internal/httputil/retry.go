// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client plumbing shared by the sync
// backends: a configured client and a retrying request helper.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/homepage/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// maxRetryAfter caps a server-supplied Retry-After wait.
const maxRetryAfter = 5 * time.Minute

const defaultMaxRetries = 5

// NewClient returns a client using the configured timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Retrier sends requests and retries them on HTTP 429 (Too Many Requests).
type Retrier struct {
	Client *http.Client

	// MaxRetries bounds the retries per request. Zero means 5.
	MaxRetries int

	// Limiter paces requests to the service's published rate. Nil means
	// unpaced.
	Limiter *rate.Limiter

	// Log receives one line per backoff. Nil means silent.
	Log io.Writer
}

// Do executes req, retrying on 429. The wait is the server's Retry-After
// when it gives one in seconds, otherwise RetryBaseDelay doubled on each
// attempt (10 s, 20 s, 40 s, ...).
//
// The 429 body is drained and closed before each wait. A context
// cancelled during a wait returns ctx.Err(). After the last retry the
// final 429 response is returned so the caller can report it.
func (r Retrier) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	maxRetries := r.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	for attempt := 0; ; attempt++ {
		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff(resp.Header.Get("Retry-After"), attempt)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if r.Log != nil {
			fmt.Fprintf(r.Log, "  rate limited by %s, retrying in %v (attempt %d/%d)\n",
				req.URL.Host, wait, attempt+1, maxRetries)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func backoff(retryAfter string, attempt int) time.Duration {
	if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, maxRetryAfter)
	}
	return RetryBaseDelay << attempt
}

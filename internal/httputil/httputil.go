// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client helpers shared by link
// validation and the weather client.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"time"
)

// DefaultTimeout is applied when a stage does not configure its own.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies dockit on outbound requests. Link checks
// override this with a browser-like agent since some hosts reject
// unfamiliar clients.
const DefaultUserAgent = "dockit/0.1"

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const defaultMaxRetries = 3

// NewClient returns an http.Client with the given per-request timeout,
// falling back to DefaultTimeout when timeout is zero or negative.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Do executes req and retries on HTTP 429 (Too Many Requests) with
// exponential backoff starting at RetryBaseDelay. When maxRetries is 0
// the default (3) is used. On each 429 the response body is drained and
// closed before sleeping; a context cancellation during the wait returns
// ctx.Err(). After exhausting retries the last 429 response is returned
// so the caller can inspect it. Other status codes pass through untouched.
func Do(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

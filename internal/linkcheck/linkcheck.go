// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package linkcheck validates extracted URLs for reachability. Each URL
// is looked up independently with a bounded timeout; failures are recorded
// in the result, never raised to the caller.
package linkcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Krisha434/dockit/internal/httputil"
	"github.com/Krisha434/dockit/pkg/types"
)

// browserUserAgent is sent with lookups; some hosts reject requests
// without a browser-like agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultConcurrency = 8

// Checker validates URLs against the live network.
type Checker struct {
	client      *http.Client
	userAgent   string
	concurrency int
}

// NewChecker builds a Checker from config. Zero values fall back to a
// 5-second timeout, a browser-like User-Agent, and 8 concurrent lookups.
func NewChecker(cfg types.LinkCheckConfig) *Checker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = browserUserAgent
	}
	conc := cfg.Concurrency
	if conc <= 0 {
		conc = defaultConcurrency
	}
	return &Checker{
		client:      httputil.NewClient(timeout),
		userAgent:   ua,
		concurrency: conc,
	}
}

// Check validates each URL and returns an unordered mapping from URL to
// status. Lookups run concurrently under a bounded worker pool; no
// ordering is guaranteed across URLs. An empty input yields an empty map.
func (c *Checker) Check(ctx context.Context, urls []string) map[string]types.LinkStatus {
	results := make(map[string]types.LinkStatus, len(urls))
	if len(urls) == 0 {
		return results
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, c.concurrency)
	)

	for _, u := range urls {
		mu.Lock()
		_, dup := results[u]
		if !dup {
			results[u] = types.LinkStatus{} // reserve so duplicates are checked once
		}
		mu.Unlock()
		if dup {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(u string) {
			defer wg.Done()
			defer func() { <-sem }()
			status := c.lookup(ctx, u)
			mu.Lock()
			results[u] = status
			mu.Unlock()
		}(u)
	}

	wg.Wait()
	return results
}

// Annotate fills in the Status field of each document link from a Check
// result mapping.
func Annotate(doc *types.Document, results map[string]types.LinkStatus) {
	for i := range doc.Links {
		if s, ok := results[doc.Links[i].URL]; ok {
			status := s
			doc.Links[i].Status = &status
		}
	}
}

// lookup tries HEAD first and falls back to GET when HEAD errors or
// answers with a status of 400 or above. A status below 400 on either
// attempt marks the URL valid.
func (c *Checker) lookup(ctx context.Context, url string) types.LinkStatus {
	if ok, _ := c.attempt(ctx, http.MethodHead, url); ok {
		return types.LinkStatus{Valid: true}
	}

	ok, reason := c.attempt(ctx, http.MethodGet, url)
	if ok {
		return types.LinkStatus{Valid: true}
	}
	return types.LinkStatus{Valid: false, Reason: reason}
}

func (c *Checker) attempt(ctx context.Context, method, url string) (ok bool, reason string) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return false, err.Error()
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 400 {
		return true, ""
	}
	return false, fmt.Sprintf("HTTP %d", resp.StatusCode)
}

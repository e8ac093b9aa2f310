// Package client implements the gateway to the remote SnapBuy commerce API:
// a single point of outbound communication that attaches the store's API key
// and optional session token to every request, plus a read-through cache for
// unauthenticated catalog reads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

const defaultCacheTTL = 5 * time.Minute

// Config holds the settings required to construct a Client.
type Config struct {
	// BaseURL is the root of the remote API, without a trailing slash.
	BaseURL string
	// APIKey is sent in the x-api-key header on every request.
	APIKey string
	// HTTPClient performs the actual requests. Timeouts are its
	// responsibility; the gateway enforces none of its own.
	HTTPClient *http.Client
	// CacheTTL bounds how stale a cached catalog read may be.
	// Defaults to 5 minutes.
	CacheTTL time.Duration
}

// Client is the API gateway. All state beyond the response cache lives on
// the remote side; the zero-cost methods are safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *responseCache
}

// New validates cfg and constructs a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
		cache:   newResponseCache(ttl),
	}, nil
}

// RequestError reports a non-success response from the remote API. The
// caller cannot distinguish an authentication failure from any other
// transport failure without inspecting Status.
type RequestError struct {
	Status     int
	StatusText string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.StatusText)
}

// call issues one request and returns the raw response body. Every endpoint
// of the remote contract is invoked with method POST regardless of its
// semantic read/write nature. Failures are surfaced to the caller as-is; no
// retry, no backoff.
func (c *Client) call(ctx context.Context, endpoint string, body any, token string) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, rd)
	if err != nil {
		return nil, errors.Wrapf(err, "create request for %s", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a bounded amount so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &RequestError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", endpoint)
	}
	return raw, nil
}

// callJSON issues one request and decodes the JSON response into out.
// A nil out discards the response body.
func (c *Client) callJSON(ctx context.Context, endpoint string, body, out any, token string) error {
	raw, err := c.call(ctx, endpoint, body, token)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s response", endpoint)
	}
	return nil
}

// cachedJSON is callJSON behind the read-through cache. A supplied token
// bypasses caching entirely: authenticated responses are caller-specific
// and must never be served across identities or go stale.
func (c *Client) cachedJSON(ctx context.Context, key, endpoint string, body, out any, token string) error {
	if token != "" {
		return c.callJSON(ctx, endpoint, body, out, token)
	}

	if raw, ok := c.cache.get(key); ok {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrapf(err, "decode cached %s response", endpoint)
		}
		return nil
	}

	raw, err := c.call(ctx, endpoint, body, "")
	if err != nil {
		return err
	}
	c.cache.set(key, raw)

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s response", endpoint)
	}
	return nil
}

// PageQuery carries the pagination parameters of listing endpoints.
type PageQuery struct {
	Limit   int
	StartAt string
}

// body builds the wire shape, omitting unset fields.
func (q PageQuery) body() map[string]any {
	b := map[string]any{}
	if q.Limit > 0 {
		b["limit"] = q.Limit
	}
	if q.StartAt != "" {
		b["startAt"] = q.StartAt
	}
	return b
}

// cacheKey builds the cache key for a paginated listing. The key must fully
// capture the logical query identity so distinct pages never collide.
func (q PageQuery) cacheKey(prefix string) string {
	limit := "all"
	if q.Limit > 0 {
		limit = strconv.Itoa(q.Limit)
	}
	start := "start"
	if q.StartAt != "" {
		start = q.StartAt
	}
	return prefix + "_" + limit + "_" + start
}

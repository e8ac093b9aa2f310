package transport

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubResponse(status int) *http.Response {
	return &http.Response{StatusCode: status, Header: http.Header{}}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return Func(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}
	base := Func(func(r *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return stubResponse(http.StatusOK), nil
	})

	rt := Chain(base, mw("outer"), mw("inner"))
	req, err := http.NewRequest(http.MethodPost, "http://example.com/x", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "base"}, order)
}

func TestRequestIDSet(t *testing.T) {
	var gotID string
	base := Func(func(r *http.Request) (*http.Response, error) {
		gotID = r.Header.Get("X-Request-ID")
		return stubResponse(http.StatusOK), nil
	})

	rt := Chain(base, RequestID())
	req, err := http.NewRequest(http.MethodPost, "http://example.com/x", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	require.NotEmpty(t, gotID)
	_, err = uuid.Parse(gotID)
	assert.NoError(t, err)

	// The caller's request is untouched.
	assert.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestRequestIDPreserved(t *testing.T) {
	var gotID string
	base := Func(func(r *http.Request) (*http.Response, error) {
		gotID = r.Header.Get("X-Request-ID")
		return stubResponse(http.StatusOK), nil
	})

	rt := Chain(base, RequestID())
	req, err := http.NewRequest(http.MethodPost, "http://example.com/x", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "given-id")

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "given-id", gotID)
}

func TestThrottleAllow(t *testing.T) {
	th := newThrottler(ThrottleConfig{Max: 2, Window: time.Minute})
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	allowed, _ := th.allow("host", base)
	assert.True(t, allowed)
	allowed, _ = th.allow("host", base.Add(time.Second))
	assert.True(t, allowed)

	allowed, wait := th.allow("host", base.Add(2*time.Second))
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))

	// Separate keys have separate budgets.
	allowed, _ = th.allow("other", base.Add(2*time.Second))
	assert.True(t, allowed)

	// A fresh window after the old ones are stale admits again.
	allowed, _ = th.allow("host", base.Add(3*time.Minute))
	assert.True(t, allowed)
}

func TestThrottleBlocksThenProceeds(t *testing.T) {
	calls := 0
	base := Func(func(r *http.Request) (*http.Response, error) {
		calls++
		return stubResponse(http.StatusOK), nil
	})

	rt := Chain(base, Throttle(ThrottleConfig{Max: 1, Window: 30 * time.Millisecond}))
	req := &http.Request{Method: http.MethodPost, URL: &url.URL{Scheme: "http", Host: "example.com", Path: "/x"}, Header: http.Header{}}
	req = req.WithContext(context.Background())

	start := time.Now()
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestThrottleContextCancelled(t *testing.T) {
	base := Func(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK), nil
	})

	rt := Chain(base, Throttle(ThrottleConfig{Max: 1, Window: time.Hour}))
	ctx, cancel := context.WithCancel(context.Background())
	req := (&http.Request{Method: http.MethodPost, URL: &url.URL{Scheme: "http", Host: "example.com", Path: "/x"}, Header: http.Header{}}).WithContext(ctx)

	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	cancel()
	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, context.Canceled)
}

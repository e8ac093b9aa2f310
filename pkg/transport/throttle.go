package transport

import (
	"net/http"
	"sync"
	"time"
)

// ThrottleConfig configures the sliding window throttle.
type ThrottleConfig struct {
	// Max is the maximum number of requests allowed per window.
	Max int
	// Window is the duration of each sliding window.
	Window time.Duration
	// KeyFunc extracts the throttle key from a request.
	// If nil, requests are keyed by target host.
	KeyFunc func(*http.Request) string
}

// entry tracks request counts across two adjacent windows for the sliding
// window algorithm.
type entry struct {
	prevCount float64
	prevStart time.Time
	currCount float64
	currStart time.Time
}

// throttler holds the shared sliding window state.
type throttler struct {
	cfg     ThrottleConfig
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]*entry
}

func newThrottler(cfg ThrottleConfig) *throttler {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(r *http.Request) string { return r.URL.Host }
	}
	return &throttler{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// allow checks whether a request under key fits the current window. When it
// does not, it also reports how long until the window frees a slot.
func (t *throttler) allow(key string, now time.Time) (allowed bool, wait time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		e = &entry{currStart: now}
		t.entries[key] = e
	}

	// Rotate window if the current window has elapsed.
	if now.Sub(e.currStart) >= t.cfg.Window {
		e.prevCount = e.currCount
		e.prevStart = e.currStart
		e.currCount = 0
		e.currStart = now.Truncate(t.cfg.Window)
		if now.Sub(e.prevStart) >= 2*t.cfg.Window {
			e.prevCount = 0
		}
	}

	// Sliding window: weight previous window by how much of it overlaps
	// with the current sliding window.
	elapsed := now.Sub(e.currStart)
	overlapRatio := 1.0 - elapsed.Seconds()/t.cfg.Window.Seconds()
	if overlapRatio < 0 {
		overlapRatio = 0
	}
	effectiveCount := e.prevCount*overlapRatio + e.currCount

	if effectiveCount >= float64(t.cfg.Max) {
		resetAt := e.currStart.Add(t.cfg.Window)
		wait = resetAt.Sub(now)
		if wait < 0 {
			wait = 0
		}
		return false, wait
	}

	e.currCount++
	return true, 0
}

// Throttle returns a middleware that holds outbound requests to at most
// cfg.Max per cfg.Window per key. An over-limit request blocks until the
// window frees a slot or its context is done; it is never dropped.
func Throttle(cfg ThrottleConfig) Middleware {
	t := newThrottler(cfg)
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			key := t.cfg.KeyFunc(r)
			for {
				allowed, wait := t.allow(key, t.now())
				if allowed {
					return next.RoundTrip(r)
				}

				timer := time.NewTimer(wait)
				select {
				case <-r.Context().Done():
					timer.Stop()
					return nil, r.Context().Err()
				case <-timer.C:
				}
			}
		})
	}
}

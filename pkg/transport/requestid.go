package transport

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID returns a middleware that stamps every outbound request with an
// X-Request-ID header so calls can be correlated in the remote's logs. A
// request that already carries one keeps it.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get("X-Request-ID") == "" {
				// RoundTrippers must not mutate the caller's request.
				r = r.Clone(r.Context())
				r.Header.Set("X-Request-ID", uuid.New().String())
			}
			return next.RoundTrip(r)
		})
	}
}

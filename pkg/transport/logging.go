package transport

import (
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// LogRequests returns a middleware that logs every outbound call with its
// method, path, status, and duration. The logger is taken from the request
// context so trace fields attached upstream carry through.
func LogRequests() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			lg := zctx.From(r.Context())
			start := time.Now()

			resp, err := next.RoundTrip(r)
			elapsed := time.Since(start)

			if err != nil {
				lg.Warn("Request failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", elapsed),
					zap.Error(err),
				)
				return nil, err
			}

			lg.Debug("Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", elapsed),
			)
			return resp, nil
		})
	}
}

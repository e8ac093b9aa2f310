// Package transport provides composable http.RoundTripper middleware for
// outbound requests: request identifiers, structured request logging, and
// client-side throttling.
package transport

import "net/http"

// Middleware wraps an http.RoundTripper with additional behaviour.
type Middleware func(http.RoundTripper) http.RoundTripper

// Func adapts a plain function to the http.RoundTripper interface.
type Func func(*http.Request) (*http.Response, error)

func (f Func) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain applies the middlewares to base. The first middleware is the
// outermost: it sees the request first and the response last.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}

package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so that the first argument is the outermost
// wrapper: Chain(a, b)(h) == a(b(h)). Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}

// When returns mw if enabled and a pass-through otherwise.
func When(enabled bool, mw Middleware) Middleware {
	if !enabled || mw == nil {
		return passThrough
	}
	return mw
}

func passThrough(h http.Handler) http.Handler { return h }

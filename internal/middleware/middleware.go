package middleware

import "net/http"

// Middleware decorates a handler with a cross-cutting concern, such as
// request logging around the solver endpoints.
type Middleware func(http.Handler) http.Handler

// Wrap layers mws around h. The last middleware given sees requests first.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

package broute

import (
	"context"
	"net/http"
)

// Handler mirrors http.Handler but it receives the request context as an
// explicit argument and supports returning an error. The route tree never
// calls handlers, it only carries them; values must therefore be safe to
// share once the tree is built.
type Handler interface {
	ServeRoute(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(context.Context, http.ResponseWriter, *http.Request) error

// ServeRoute implements the [Handler] interface.
func (f HandlerFunc) ServeRoute(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return f(ctx, w, r)
}

// Middleware for cross-cutting concerns scoped to a subtree of routes.
type Middleware func(Handler) Handler

// Wrap takes the inner handler h and wraps it with middleware. The order is that of the Gorilla and Chi router. That
// is: the middleware provided first is called first and is the "outer" most wrapping, the middleware provided last
// will be the "inner most" wrapping (closest to the handler).
func Wrap(h Handler, m ...Middleware) Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}

// ToStd converts handler h into a standard library http.Handler. An error
// returned from the handler is logged and rendered as its status code, or as
// a plain 500 when the error carries no code.
func ToStd(h Handler, logs Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h.ServeRoute(r.Context(), w, r)
		if err == nil {
			return
		}

		logs.LogUnhandledServeError(err)

		code := CodeOf(err)
		if code == CodeUnknown {
			code = CodeInternalServerError
		}

		http.Error(w, http.StatusText(int(code)), int(code))
	})
}

package broute

import "net/http"

// Registrar is any component that routes can be registered on, like the
// [StdMux] in this package or an adapter to a third-party router. For each
// endpoint it receives the composed, normalized path, the method (empty for
// a catch-all) and the complete middleware chain in outermost-first order.
type Registrar interface {
	RegisterEndpoint(path, method string, middleware []Middleware, handler Handler)
}

// Register flattens the route tree and registers every endpoint on the
// registrar. An error recorded anywhere while building the tree surfaces
// here and nothing is registered.
func Register(reg Registrar, root *RouteSegment) error {
	descs, err := root.Build()
	if err != nil {
		return err
	}

	for _, d := range descs {
		reg.RegisterEndpoint(d.Path.String(), d.Method, d.Middleware, d.Handler)
	}

	return nil
}

// StdMux implements [Registrar] on top of a standard library http.ServeMux,
// using the Go 1.22 "METHOD /path" patterns and a bare path for catch-alls.
type StdMux struct {
	mux  *http.ServeMux
	logs Logger
}

// NewStdMux wraps the given mux.
func NewStdMux(mux *http.ServeMux, logs Logger) *StdMux {
	return &StdMux{mux: mux, logs: logs}
}

// RegisterEndpoint implements [Registrar]. The handler is wrapped with its
// middleware chain, first-registered middleware outermost, before it is
// converted and handed to the underlying mux.
func (m *StdMux) RegisterEndpoint(path, method string, middleware []Middleware, handler Handler) {
	pattern := path
	if method != "" {
		pattern = method + " " + path
	}

	m.mux.Handle(pattern, ToStd(Wrap(handler, middleware...), m.logs))
	m.logs.LogRouteRegistered(pattern)
}

var _ Registrar = &StdMux{}

package broute

// RouteDescriptor describes one endpoint flattened out of a route tree: the
// fully composed path to it, its method, the middleware collected from the
// root down to its segment (first-collected is outermost) and the handler
// itself. Descriptors are immutable and safe to share once built.
type RouteDescriptor struct {
	Path       Path
	Method     string // empty means the handler catches all methods
	Middleware []Middleware
	Handler    Handler
}

// Pattern formats the descriptor for registration on the standard library
// mux, e.g. "GET /api/v1", or just the path for a catch-all.
func (d RouteDescriptor) Pattern() string {
	if d.Method == "" {
		return d.Path.String()
	}

	return d.Method + " " + d.Path.String()
}

package broute

import (
	"net/http"
	"slices"

	"github.com/cockroachdb/errors"
)

// Root starts building a route tree. It returns the root segment, anchored
// at "/", with no middleware, name or endpoints.
func Root() *RouteSegment {
	return &RouteSegment{path: "/"}
}

// RouteSegment is one segment of a route tree. Segments compose into a tree
// of path segments, middleware scopes and endpoints that defines the routes
// of an application. The tree is then flattened with [RouteSegment.Build]
// into one descriptor per endpoint, or indexed by name with
// [NewReverseRouter].
//
// Builder methods return the segment they were called on, so routes read as
// a fluent declaration:
//
//	root := broute.Root().
//		Get(home).
//		At("api/v1", func(r *broute.RouteSegment) {
//			r.With(auth, func(r *broute.RouteSegment) {
//				r.Get(listItems).Post(createItem)
//			})
//		})
//
// A segment records the first error raised while building (a duplicate name,
// a failing file server). The error travels up through every enclosing At or
// With scope and fails Build, so a conflict anywhere in a subtree means no
// routes are produced at all.
type RouteSegment struct {
	path       Path
	middleware []Middleware
	name       string

	branches  []*RouteSegment
	endpoints []endpoint

	err   error
	built bool
}

// endpoint pairs an HTTP method, or the catch-all when the method is empty,
// with its handler. A slice keeps insertion order so flattening stays
// deterministic.
type endpoint struct {
	method  string
	handler Handler
}

// At adds a branch for a path segment. The branch's path is this segment's
// path extended with 'segment'; its middleware chain is inherited unchanged.
// The routes func populates the branch before At returns.
func (s *RouteSegment) At(segment string, routes func(*RouteSegment)) *RouteSegment {
	return s.branch(&RouteSegment{
		path:       s.path.Append(segment),
		middleware: slices.Clone(s.middleware),
	}, routes)
}

// With adds a branch scoped to a middleware. The branch keeps this segment's
// path and appends 'mw' to the inherited middleware chain: everything built
// inside the routes func runs behind it, nothing outside it does.
func (s *RouteSegment) With(mw Middleware, routes func(*RouteSegment)) *RouteSegment {
	return s.branch(&RouteSegment{
		path:       s.path,
		middleware: append(slices.Clone(s.middleware), mw),
	}, routes)
}

func (s *RouteSegment) branch(child *RouteSegment, routes func(*RouteSegment)) *RouteSegment {
	if routes != nil {
		routes(child)
	}

	s.branches = append(s.branches, child)

	return s
}

// Method adds an endpoint for an HTTP method. Registering the same method
// twice on one segment replaces the earlier handler; distinct segments that
// compose to the same path are not merged and both flatten out.
func (s *RouteSegment) Method(method string, h Handler) *RouteSegment {
	for i, ep := range s.endpoints {
		if ep.method == method {
			s.endpoints[i].handler = h
			return s
		}
	}

	s.endpoints = append(s.endpoints, endpoint{method: method, handler: h})

	return s
}

// All adds a catch-all endpoint that matches any method at this path.
func (s *RouteSegment) All(h Handler) *RouteSegment {
	return s.Method("", h)
}

// Get adds an HTTP GET endpoint.
func (s *RouteSegment) Get(h Handler) *RouteSegment { return s.Method(http.MethodGet, h) }

// Head adds an HTTP HEAD endpoint.
func (s *RouteSegment) Head(h Handler) *RouteSegment { return s.Method(http.MethodHead, h) }

// Post adds an HTTP POST endpoint.
func (s *RouteSegment) Post(h Handler) *RouteSegment { return s.Method(http.MethodPost, h) }

// Put adds an HTTP PUT endpoint.
func (s *RouteSegment) Put(h Handler) *RouteSegment { return s.Method(http.MethodPut, h) }

// Delete adds an HTTP DELETE endpoint.
func (s *RouteSegment) Delete(h Handler) *RouteSegment { return s.Method(http.MethodDelete, h) }

// Options adds an HTTP OPTIONS endpoint.
func (s *RouteSegment) Options(h Handler) *RouteSegment { return s.Method(http.MethodOptions, h) }

// Connect adds an HTTP CONNECT endpoint.
func (s *RouteSegment) Connect(h Handler) *RouteSegment { return s.Method(http.MethodConnect, h) }

// Patch adds an HTTP PATCH endpoint.
func (s *RouteSegment) Patch(h Handler) *RouteSegment { return s.Method(http.MethodPatch, h) }

// Trace adds an HTTP TRACE endpoint.
func (s *RouteSegment) Trace(h Handler) *RouteSegment { return s.Method(http.MethodTrace, h) }

// Name makes this a named route for reverse routing. Naming a segment twice
// is a conflict that fails the whole build.
func (s *RouteSegment) Name(name string) *RouteSegment {
	if s.name != "" {
		s.fail(&DuplicateNameError{Name: s.name})
		return s
	}

	s.name = name

	return s
}

// fail records the first error raised while building this segment.
func (s *RouteSegment) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// firstErr returns the first construction error in depth-first, branch-order
// traversal, or nil when the whole subtree built cleanly.
func (s *RouteSegment) firstErr() error {
	if s.err != nil {
		return s.err
	}

	for _, b := range s.branches {
		if err := b.firstErr(); err != nil {
			return err
		}
	}

	return nil
}

// Build flattens the tree into one descriptor per declared endpoint: a
// segment's own endpoints first in declaration order, then each branch in
// the order it was added. Build consumes the tree; building the same root
// twice is an error, as is any error recorded during construction. In either
// case no descriptors are returned.
func (s *RouteSegment) Build() ([]RouteDescriptor, error) {
	if s.built {
		return nil, errors.New("route tree already built")
	}

	if err := s.firstErr(); err != nil {
		return nil, err
	}

	s.built = true

	return s.build(), nil
}

func (s *RouteSegment) build() []RouteDescriptor {
	descs := make([]RouteDescriptor, 0, len(s.endpoints))
	for _, ep := range s.endpoints {
		descs = append(descs, RouteDescriptor{
			Path:       s.path,
			Method:     ep.method,
			Middleware: s.middleware,
			Handler:    ep.handler,
		})
	}

	for _, b := range s.branches {
		descs = append(descs, b.build()...)
	}

	return descs
}

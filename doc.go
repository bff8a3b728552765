// Package broute builds HTTP route trees fluently and flattens them into
// plain route registrations.
//
// # Overview
//
// broute separates declaring routes from registering them. A route tree is
// composed out of path segments, middleware scopes and per-method endpoints,
// then flattened into one [RouteDescriptor] per endpoint. The descriptors
// are handed to a [Registrar], like the [StdMux] wrapper around the standard
// library mux, which performs the actual registration. The tree itself never
// dispatches requests and never calls a handler.
//
// A minimal example:
//
//	root := broute.Root().
//		Get(home).
//		At("api/v1", func(r *broute.RouteSegment) {
//			r.With(requireAuth, func(r *broute.RouteSegment) {
//				r.Get(listItems).Post(createItem)
//			}).Name("api")
//		})
//
//	mux := http.NewServeMux()
//	if err := broute.Register(broute.NewStdMux(mux, logs), root); err != nil {
//		return err
//	}
//
// # Paths and middleware
//
// [RouteSegment.At] extends the composed path, [RouteSegment.With] scopes a
// middleware to everything declared inside its callback. Joining is
// normalized to exactly one slash between segments; a leading slash on the
// first segment and a trailing slash on the last one are kept as given.
// Middleware accumulates from the root down, and wrapping follows the
// Gorilla and Chi order: the middleware added first is the outermost one.
//
// # Errors while building
//
// Builder calls do not return errors; a conflict, like naming one segment
// twice, is recorded on the segment and surfaces from [RouteSegment.Build],
// [Register] or [NewReverseRouter]. A failed build registers nothing.
//
// # Reverse routing
//
// Segments can be named with [RouteSegment.Name]. [NewReverseRouter] indexes
// the named segments of a tree so the application can resolve a name back to
// its composed path, optionally substituting values for "{param}"
// placeholders:
//
//	rev, err := broute.NewReverseRouter(root)
//	...
//	loc, err := rev.ResolveParams("blog-post", map[string]string{"slug": "hello"})
//
// # Serving files
//
// [RouteSegment.ServeDir] and [RouteSegment.ServeFile] declare endpoints
// that serve from the local file system. The base path is resolved when the
// tree is built; request sub-paths that would escape it are rejected.
package broute

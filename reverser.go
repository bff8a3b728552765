package broute

import (
	"github.com/advdv/broute/internal/pathpattern"
	"github.com/cockroachdb/errors"
)

// ReverseRouter resolves route names back to their composed paths.
type ReverseRouter struct {
	routes map[string]string
}

// NewReverseRouter walks the route tree depth-first and indexes every named
// segment. It fails when construction of the tree failed, and when two
// segments anywhere in the tree share a name: silently keeping the later one
// would make lookups depend on declaration order.
func NewReverseRouter(root *RouteSegment) (*ReverseRouter, error) {
	if err := root.firstErr(); err != nil {
		return nil, err
	}

	rev := &ReverseRouter{routes: make(map[string]string)}
	if err := rev.collect(root); err != nil {
		return nil, err
	}

	return rev, nil
}

// collect walks in the same depth-first, branch-order traversal as Build.
// Middleware is irrelevant to naming and is not collected.
func (r *ReverseRouter) collect(s *RouteSegment) error {
	if s.name != "" {
		if _, exists := r.routes[s.name]; exists {
			return &DuplicateNameError{Name: s.name}
		}

		r.routes[s.name] = s.path.String()
	}

	for _, b := range s.branches {
		if err := r.collect(b); err != nil {
			return err
		}
	}

	return nil
}

// Resolve returns the composed path of the route named 'name'.
func (r *ReverseRouter) Resolve(name string) (string, error) {
	path, ok := r.routes[name]
	if !ok {
		return "", newNotFoundError(name, r.routes)
	}

	return path, nil
}

// ResolveParams resolves a named route and substitutes vals into its
// "{param}" placeholders, using the placeholder syntax of Go 1.22 ServeMux
// patterns. Every placeholder must be given a value and every value must
// match a placeholder.
func (r *ReverseRouter) ResolveParams(name string, vals map[string]string) (string, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return "", err
	}

	pat, err := pathpattern.Parse(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse path of route %q", name)
	}

	res, err := pat.Build(vals)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build path of route %q", name)
	}

	return res, nil
}

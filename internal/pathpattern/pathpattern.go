// Package pathpattern parses the placeholder syntax of Go 1.22 ServeMux
// patterns, like "/blog/{slug}" or "/assets/{file...}", and substitutes
// values back into them for reverse routing.
package pathpattern

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Pattern is a parsed path, split on slashes into literal and placeholder
// segments.
type Pattern struct {
	segments []segment
}

// segment is either a literal (name empty) or a placeholder. A multi
// placeholder, "{name...}", stands for the remainder of the path.
type segment struct {
	literal string
	name    string
	multi   bool
}

// Parse parses a path into a pattern. Placeholders must span a whole path
// segment, "{name...}" and the "{$}" anchor may only appear at the end, and
// placeholder names may not repeat.
func Parse(path string) (*Pattern, error) {
	if path == "" {
		return nil, errors.New("empty pattern")
	}

	pat := &Pattern{}
	seen := map[string]bool{}
	parts := strings.Split(path, "/")

	for i, part := range parts {
		last := i == len(parts)-1

		if !strings.ContainsAny(part, "{}") {
			pat.segments = append(pat.segments, segment{literal: part})
			continue
		}

		if !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") {
			return nil, errors.Newf("placeholder must span the whole segment, got %q", part)
		}

		if part == "{$}" {
			if !last {
				return nil, errors.New("{$} may only appear as the final segment")
			}

			// "/{$}" anchors a pattern to the exact path, it reverses
			// to a bare trailing slash.
			pat.segments = append(pat.segments, segment{literal: ""})
			continue
		}

		name := part[1 : len(part)-1]
		multi := strings.HasSuffix(name, "...")
		if multi {
			name = strings.TrimSuffix(name, "...")
			if !last {
				return nil, errors.Newf("placeholder {%s...} may only appear as the final segment", name)
			}
		}

		if !validName(name) {
			return nil, errors.Newf("invalid placeholder name %q", name)
		}

		if seen[name] {
			return nil, errors.Newf("placeholder %q appears twice", name)
		}
		seen[name] = true

		pat.segments = append(pat.segments, segment{name: name, multi: multi})
	}

	return pat, nil
}

// Build substitutes vals into the pattern's placeholders. Every placeholder
// must be given a value and every value must match a placeholder.
func (p *Pattern) Build(vals map[string]string) (string, error) {
	used := make(map[string]bool, len(vals))
	parts := make([]string, 0, len(p.segments))

	for _, seg := range p.segments {
		if seg.name == "" {
			parts = append(parts, seg.literal)
			continue
		}

		val, ok := vals[seg.name]
		if !ok {
			return "", errors.Newf("no value for placeholder %q", seg.name)
		}

		used[seg.name] = true
		parts = append(parts, val)
	}

	for name := range vals {
		if !used[name] {
			return "", errors.Newf("value %q does not match any placeholder", name)
		}
	}

	return strings.Join(parts, "/"), nil
}

// validName reports whether name is a valid placeholder name: a non-empty
// Go identifier.
func validName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

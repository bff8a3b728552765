package broute

import "strings"

// Path collects route segments into a slash-normalized path. The zero value
// is the empty path. Appending never mutates: every join returns a new value,
// so parent segments can hand their path to any number of children.
type Path string

// Append joins a segment onto the path with exactly one slash between the
// two parts. A leading slash on the very first segment and a trailing slash
// on the last appended segment are preserved; runs of slashes inside the
// provided segment collapse to one. Appending the empty segment is a no-op.
func (p Path) Append(segment string) Path {
	segment = collapseSlashes(segment)

	switch {
	case segment == "":
		return p
	case p == "":
		return Path(segment)
	default:
		return Path(strings.TrimRight(string(p), "/") + "/" + strings.TrimLeft(segment, "/"))
	}
}

func (p Path) String() string {
	return string(p)
}

// collapseSlashes reduces every run of consecutive slashes to a single one.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	var prev byte
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && prev == '/' {
			continue
		}

		b.WriteByte(s[i])
		prev = s[i]
	}

	return b.String()
}

package broute

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ServeDir serves the files below dir from this segment, at a "{file...}"
// wildcard branch for GET and HEAD. Failure to resolve the directory is
// recorded on the segment and fails the build.
func (s *RouteSegment) ServeDir(dir string) *RouteSegment {
	h, err := NewDirServer(dir)
	if err != nil {
		s.fail(err)
		return s
	}

	return s.At("{file...}", func(r *RouteSegment) {
		r.Get(h).Head(h)
	})
}

// ServeFile serves a single file at this segment for GET and HEAD. Failure
// to resolve the file is recorded on the segment and fails the build.
func (s *RouteSegment) ServeFile(file string) *RouteSegment {
	h, err := NewFileServer(file)
	if err != nil {
		s.fail(err)
		return s
	}

	return s.Get(h).Head(h)
}

// NewDirServer returns a handler that serves the files below dir. The base
// directory is resolved once, up front. Per request, the sub-path is taken
// from the "{file...}" path value (or the request path when routed without
// one) and rejected when it would escape the base; missing files resolve to
// [CodeNotFound].
func NewDirServer(dir string) (Handler, error) {
	base, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve directory %q", dir)
	}

	info, err := os.Stat(base)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat directory %q", dir)
	}

	if !info.IsDir() {
		return nil, errors.Newf("%q is not a directory", dir)
	}

	return HandlerFunc(func(_ context.Context, w http.ResponseWriter, r *http.Request) error {
		rel := r.PathValue("file")
		if rel == "" {
			rel = strings.TrimPrefix(r.URL.Path, "/")
		}

		clean, ok := sanitizeRelPath(rel)
		if !ok {
			return NewError(CodeNotFound, errors.Newf("path %q escapes the served directory", rel))
		}

		return serveLocalFile(w, r, filepath.Join(base, filepath.FromSlash(clean)))
	}), nil
}

// NewFileServer returns a handler that serves the single given file, resolved
// up front.
func NewFileServer(file string) (Handler, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve file %q", file)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat file %q", file)
	}

	if info.IsDir() {
		return nil, errors.Newf("%q is a directory, not a file", file)
	}

	return HandlerFunc(func(_ context.Context, w http.ResponseWriter, r *http.Request) error {
		return serveLocalFile(w, r, abs)
	}), nil
}

func serveLocalFile(w http.ResponseWriter, r *http.Request, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return NewError(CodeNotFound, errors.Wrapf(err, "failed to open %q", r.URL.Path))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return NewError(CodeNotFound, errors.Wrapf(err, "failed to stat %q", r.URL.Path))
	}

	if info.IsDir() {
		return NewError(CodeNotFound, errors.Newf("no file at %q", r.URL.Path))
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)

	return nil
}

// sanitizeRelPath rejects traversal and absolute-path tricks so serving
// cannot escape the base directory.
func sanitizeRelPath(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, `\`) {
		return "", false
	}

	// A leading "/" indicates an absolute-path attempt.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away" traversal
	// attempts and changing the meaning of the request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	// Reject OS-absolute and volume paths after slash conversion.
	if osPath := filepath.FromSlash(clean); filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

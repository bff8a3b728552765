package broute_test

import (
	"testing"

	"github.com/advdv/broute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedTree() *broute.RouteSegment {
	return broute.Root().
		Name("home").
		At("articles", func(r *broute.RouteSegment) {
			r.Name("articles").
				Get(tagHandler{"list"}).
				At("{slug}", func(r *broute.RouteSegment) {
					r.Name("article").Get(tagHandler{"show"})
				})
		}).
		At("assets", func(r *broute.RouteSegment) {
			r.At("{file...}", func(r *broute.RouteSegment) {
				r.Name("asset").Get(tagHandler{"asset"})
			})
		})
}

func TestReverseRouter(t *testing.T) {
	rev, err := broute.NewReverseRouter(namedTree())
	require.NoError(t, err)

	t.Run("should resolve named routes", func(t *testing.T) {
		path, err := rev.Resolve("articles")
		require.NoError(t, err)
		assert.Equal(t, "/articles", path)

		path, err = rev.Resolve("home")
		require.NoError(t, err)
		assert.Equal(t, "/", path)

		path, err = rev.Resolve("article")
		require.NoError(t, err)
		assert.Equal(t, "/articles/{slug}", path)
	})

	t.Run("should error if resolving unknown name", func(t *testing.T) {
		_, err := rev.Resolve("bogus")
		require.Error(t, err)

		var nfe *broute.NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, "bogus", nfe.Name)
		assert.Contains(t, err.Error(), `no route named: "bogus"`)
	})

	t.Run("should substitute placeholder values", func(t *testing.T) {
		path, err := rev.ResolveParams("article", map[string]string{"slug": "hello-world"})
		require.NoError(t, err)
		assert.Equal(t, "/articles/hello-world", path)
	})

	t.Run("should substitute the rest-of-path placeholder", func(t *testing.T) {
		path, err := rev.ResolveParams("asset", map[string]string{"file": "css/site.css"})
		require.NoError(t, err)
		assert.Equal(t, "/assets/css/site.css", path)
	})

	t.Run("should error on a missing placeholder value", func(t *testing.T) {
		_, err := rev.ResolveParams("article", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no value for placeholder "slug"`)
	})

	t.Run("should error on an unused value", func(t *testing.T) {
		_, err := rev.ResolveParams("article", map[string]string{"slug": "x", "id": "1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"id" does not match any placeholder`)
	})

	t.Run("resolving without params leaves placeholders intact", func(t *testing.T) {
		path, err := rev.Resolve("asset")
		require.NoError(t, err)
		assert.Equal(t, "/assets/{file...}", path)
	})
}

func TestReverseRouterDuplicateNames(t *testing.T) {
	root := broute.Root().
		At("a", func(r *broute.RouteSegment) { r.Name("dup") }).
		At("b", func(r *broute.RouteSegment) { r.Name("dup") })

	_, err := broute.NewReverseRouter(root)
	require.Error(t, err)

	var dup *broute.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "dup", dup.Name)
}

func TestReverseRouterIgnoresMiddleware(t *testing.T) {
	root := broute.Root().With(noopMiddleware(), func(r *broute.RouteSegment) {
		r.At("x", func(r *broute.RouteSegment) { r.Name("x") })
	})

	rev, err := broute.NewReverseRouter(root)
	require.NoError(t, err)

	path, err := rev.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, "/x", path)
}

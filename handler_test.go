package broute_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advdv/broute"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapOrdering(t *testing.T) {
	var res string

	inner := broute.HandlerFunc(func(context.Context, http.ResponseWriter, *http.Request) error {
		res += "inner"
		return nil
	})

	tracer := func(tag string) broute.Middleware {
		return func(next broute.Handler) broute.Handler {
			return broute.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
				res += tag + "("
				err := next.ServeRoute(ctx, w, r)
				res += ")" + tag

				return err
			})
		}
	}

	wrapped := broute.Wrap(inner, tracer("1"), tracer("2"), tracer("3"))
	require.NoError(t, wrapped.ServeRoute(context.Background(), nil, httptest.NewRequest(http.MethodGet, "/", nil)))

	// The first middleware is the outermost wrapping.
	assert.Equal(t, "1(2(3(inner)3)2)1", res)
}

func TestWrapWithoutMiddleware(t *testing.T) {
	inner := tagHandler{"h"}
	assert.Equal(t, broute.Handler(inner), broute.Wrap(inner))
}

func TestToStdRendersErrorCode(t *testing.T) {
	logs := broute.NewTestLogger(t)

	h := broute.ToStd(broute.HandlerFunc(func(context.Context, http.ResponseWriter, *http.Request) error {
		return broute.NewError(broute.CodeTeapot, errors.New("short and stout"))
	}), logs)

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, int64(1), logs.NumLogUnhandledServeError)
}

func TestToStdRendersUnknownErrorAs500(t *testing.T) {
	logs := broute.NewTestLogger(t)

	h := broute.ToStd(broute.HandlerFunc(func(context.Context, http.ResponseWriter, *http.Request) error {
		return errors.New("kaboom")
	}), logs)

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int64(1), logs.NumLogUnhandledServeError)
}

func TestToStdSuccess(t *testing.T) {
	logs := broute.NewTestLogger(t)

	h := broute.ToStd(broute.HandlerFunc(func(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
		fmt.Fprint(w, "ok")
		return nil
	}), logs)

	rec, req := httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Zero(t, logs.NumLogUnhandledServeError)
}

package broute_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/advdv/broute"
	"github.com/cockroachdb/errors"
)

func Example() {
	root := broute.Root().
		At("items", func(r *broute.RouteSegment) {
			r.At("{id}", func(r *broute.RouteSegment) {
				r.Get(broute.HandlerFunc(getItem)).Name("get-item")
			})
		})

	rev, _ := broute.NewReverseRouter(root)

	mux := http.NewServeMux()
	logs := broute.NewStdLogger(log.New(os.Stderr, "", 0))
	if err := broute.Register(broute.NewStdMux(mux, logs), root); err != nil {
		panic(err)
	}

	// Generate a URL by route name.
	url, _ := rev.ResolveParams("get-item", map[string]string{"id": "123"})
	fmt.Println("URL:", url)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	mux.ServeHTTP(rec, req)

	fmt.Println("Status:", rec.Code)
	// Output:
	// URL: /items/123
	// Status: 200
}

func getItem(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")
	if id == "" {
		return broute.NewError(broute.CodeBadRequest, errors.New("missing id"))
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{
		"id":   id,
		"name": "Example Item",
	})
}

func ExampleRouteSegment_With() {
	requestID := func(next broute.Handler) broute.Handler {
		return broute.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("X-Request-ID", "req-123")
			return next.ServeRoute(ctx, w, r)
		})
	}

	root := broute.Root().With(requestID, func(r *broute.RouteSegment) {
		r.At("ping", func(r *broute.RouteSegment) {
			r.Get(broute.HandlerFunc(func(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
				fmt.Fprint(w, "pong")
				return nil
			}))
		})
	})

	mux := http.NewServeMux()
	logs := broute.NewStdLogger(log.New(os.Stderr, "", 0))
	if err := broute.Register(broute.NewStdMux(mux, logs), root); err != nil {
		panic(err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	mux.ServeHTTP(rec, req)

	fmt.Println("Body:", rec.Body.String())
	fmt.Println("Request ID:", rec.Header().Get("X-Request-ID"))
	// Output:
	// Body: pong
	// Request ID: req-123
}

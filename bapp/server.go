package bapp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/advdv/broute"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	HealthPath    string
	HealthHandler func(http.ResponseWriter, *http.Request)
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env    Environment
	Routes *broute.RouteSegment
	Logger *zap.Logger
}

// NewServer creates an HTTP server with the composed route tree registered
// on a fresh mux. Errors recorded while the routing function built the tree
// surface here, before the server ever starts.
func NewServer(params ServerParams, cfg ServerConfig) (*http.Server, error) {
	mux := http.NewServeMux()

	// The health check endpoint is registered outside the route tree so
	// probes don't run through application middleware.
	healthPath := cfg.HealthPath
	if healthPath == "" {
		healthPath = "/healthz"
	}

	healthHandler := cfg.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}
	mux.HandleFunc("GET "+healthPath, healthHandler)

	logs := newZapBrouteLogger(params.Logger)
	if err := broute.Register(broute.NewStdMux(mux, logs), params.Routes); err != nil {
		return nil, err
	}

	handler := otelhttp.NewHandler(mux, params.Env.serviceName())

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// startServerHook registers lifecycle hooks for the HTTP server.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

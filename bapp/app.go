package bapp

import (
	"context"
	"net/http"

	"github.com/advdv/broute"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// WithHealth sets the health check endpoint path and handler. If not set,
// "/healthz" with a handler returning 200 OK is used.
func WithHealth(path string, h func(http.ResponseWriter, *http.Request)) Option {
	return func(c *AppConfig) {
		c.HealthPath = path
		c.HealthHandler = h
	}
}

// NewApp creates a batteries-included app with dependency injection.
//
// The routing function can request any types that are provided via fx
// options. At minimum, it should accept *broute.RouteSegment, the root of
// the route tree, and declare routes on it:
//
//	bapp.NewApp[Env](func(r *broute.RouteSegment, h *Handlers) {
//	    r.At("items", func(r *broute.RouteSegment) {
//	        r.Get(broute.HandlerFunc(h.ListItems)).Name("list-items")
//	    })
//	},
//	    bapp.WithFx(fx.Provide(NewHandlers)),
//	).Run()
func NewApp[E Environment](routing any, opts ...Option) *App {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := make([]fx.Option, 0, 9+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(func(e Environment) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(broute.Root),
		fx.Supply(cfg.ServerConfig),
		fx.Provide(NewServer),

		// routing must populate the tree before the server provider
		// flattens it, so it is invoked first.
		fx.Invoke(routing),
		fx.Invoke(startServerHook),
	}...)

	baseOpts = append(baseOpts, cfg.FxOptions...)
	return &App{
		app: fx.New(baseOpts...),
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context and blocks until the
// context is canceled, then shuts down.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}

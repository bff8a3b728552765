// Package bapp boots a batteries-included HTTP application around a broute
// route tree: environment-driven configuration, a zap logger, an
// instrumented http.Server and fx-managed lifecycle.
package bapp

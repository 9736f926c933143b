// Package httpserver runs an http.Server with graceful shutdown, env-based
// configuration, and probe handlers for liveness and readiness.
package httpserver

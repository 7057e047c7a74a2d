// Package server holds the HTTP server configuration used by serve mode.
//
// While cmd/serve.go handles the server startup, this package defines the
// listen port, the optional API key, and the optional cron schedule that
// triggers background smoke runs.
package server

// Package httpclient wraps net/http for the requests a smoke run makes:
// plain GETs and multipart file uploads. Every request is counted in
// core/metrics by method, host and status.
package httpclient

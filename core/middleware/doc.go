// Package middleware contains HTTP middleware for serve mode.
//
// # Components
//
//   - Auth: Implements API key validation (X-API-Key) to protect endpoints.
//   - RayID: Tags every incoming request with a RayID, injecting it into the
//     context and the X-Ray-ID response header for tracing.
package middleware

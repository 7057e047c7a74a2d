// Package logger provides a structured logging facility based on Zap.
//
// Check diagnostics meant for a human operator are printed by the smoke feature
// itself; this logger carries the structured side of a run (target URLs, status
// codes, durations, run and ray IDs).
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, colored levels) or json
//
// # Usage
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Backend check finished", zap.String("outcome", "passed"))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
package logger

// Package smoke runs the smoke checks against the KML web application and reports on them.
//
// A run consists of the backend checker followed by the frontend checker (see
// feature/smoke/checks). Both always run; the summary printed afterwards lists
// the manual next steps only when everything passed.
//
// # Components
//
//   - Service: Runs checkers, serialises runs, keeps the last report, updates metrics.
//   - Report: Combined result plus the console summary (PrintHeader, PrintReport).
//   - Handler: Exposes runs over HTTP for serve mode.
//   - Scheduler: Triggers full runs on a cron schedule.
//
// # HTTP Endpoints
//
//   - GET /smoke : Runs all checks (503 when any failed).
//   - GET /smoke/backend : Runs backend checks.
//   - GET /smoke/frontend : Runs the frontend probe.
//   - GET /smoke/last : Returns the most recent report.
package smoke

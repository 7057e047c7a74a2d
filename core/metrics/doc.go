// Package metrics defines the Prometheus collectors updated by smoke runs.
//
// Collectors are registered on the default registry and exposed by serve mode
// at GET /metrics. In one-shot CLI runs they are updated but never scraped.
package metrics

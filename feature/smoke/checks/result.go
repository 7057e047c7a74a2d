package checks

import (
	"fmt"
	"io"
	"time"
)

// Outcome is the verdict of a single checker.
type Outcome string

const (
	Passed  Outcome = "passed"
	Failed  Outcome = "failed"
	Skipped Outcome = "skipped"
)

// BackendResult strictly types the result of a backend check.
type BackendResult struct {
	Outcome    Outcome `json:"outcome"`
	Diagnostic string  `json:"diagnostic,omitempty"`
	// StatusCode is the last non-200 status seen, if any.
	StatusCode    int           `json:"status_code,omitempty"`
	Sample        string        `json:"sample,omitempty"`
	RouteCount    int           `json:"route_count"`
	RouteName     string        `json:"route_name,omitempty"`
	ProfileCount  int           `json:"profile_count"`
	MissingFields []string      `json:"missing_fields,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// OK reports whether the backend check did not fail. A skipped check is OK.
func (r *BackendResult) OK() bool {
	return r.Outcome != Failed
}

// Attempt records one frontend probe.
type Attempt struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FrontendResult strictly types the result of a frontend check.
type FrontendResult struct {
	Outcome    Outcome `json:"outcome"`
	Diagnostic string  `json:"diagnostic,omitempty"`
	// URL is the first candidate that answered 200.
	URL      string        `json:"url,omitempty"`
	Title    string        `json:"title,omitempty"`
	Attempts []Attempt     `json:"attempts"`
	Duration time.Duration `json:"duration"`
}

// OK reports whether a frontend URL was reachable.
func (r *FrontendResult) OK() bool {
	return r.Outcome == Passed
}

// printer writes the operator-facing console lines.
type printer struct {
	w io.Writer
}

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p printer) ok(format string, args ...any) {
	p.line("✅ "+format, args...)
}

func (p printer) fail(format string, args ...any) {
	p.line("❌ "+format, args...)
}

func (p printer) warn(format string, args ...any) {
	p.line("⚠️  "+format, args...)
}

package smoke

import (
	"fmt"
	"io"
	"strings"
	"time"

	"kml-smoke/feature/smoke/checks"
)

// NextSteps are printed when every check passed.
var NextSteps = []string{
	"Open your browser to the frontend URL",
	"Upload a KML file",
	"Generate an elevation profile",
	"Toggle between Static and Interactive views",
	"Hover over the interactive chart to see details",
}

var rule = strings.Repeat("=", 50)

// Report is the combined result of one run.
type Report struct {
	RunID     string                 `json:"run_id"`
	StartedAt time.Time              `json:"started_at"`
	Backend   *checks.BackendResult  `json:"backend,omitempty"`
	Frontend  *checks.FrontendResult `json:"frontend,omitempty"`
}

// OK reports whether every check that ran is OK.
func (r *Report) OK() bool {
	if r.Backend == nil && r.Frontend == nil {
		return false
	}
	if r.Backend != nil && !r.Backend.OK() {
		return false
	}
	if r.Frontend != nil && !r.Frontend.OK() {
		return false
	}
	return true
}

// Complete reports whether both checkers ran.
func (r *Report) Complete() bool {
	return r.Backend != nil && r.Frontend != nil
}

// PrintHeader writes the banner shown before a run.
func PrintHeader(w io.Writer) {
	fmt.Fprintln(w, "🚀 Interactive Visualization Test Suite")
	fmt.Fprintln(w, rule)
}

// PrintReport writes the summary of r and, for a complete passing run, the manual next steps.
func PrintReport(w io.Writer, r *Report) {
	fmt.Fprintln(w, "\n📊 Test Results:")
	fmt.Fprintln(w, rule)

	if r.Backend != nil {
		switch r.Backend.Outcome {
		case checks.Passed:
			fmt.Fprintln(w, "✅ Backend: All tests passed")
		case checks.Skipped:
			fmt.Fprintln(w, "✅ Backend: Running (upload tests skipped, no sample file)")
		default:
			fmt.Fprintln(w, "❌ Backend: Some tests failed")
		}
	}

	if r.Frontend != nil {
		if r.Frontend.OK() {
			fmt.Fprintln(w, "✅ Frontend: Accessible")
		} else {
			fmt.Fprintln(w, "❌ Frontend: Not accessible")
		}
	}

	if r.Complete() && r.OK() {
		fmt.Fprintln(w, "\n🎉 All systems operational!")
		fmt.Fprintln(w, "📝 Next steps:")
		for i, step := range NextSteps {
			fmt.Fprintf(w, "   %d. %s\n", i+1, step)
		}
		return
	}
	if !r.OK() {
		fmt.Fprintln(w, "\n⚠️  Some issues detected. Please check the output above.")
	}
}

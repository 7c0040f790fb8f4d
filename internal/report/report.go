// Package report drives the detect → verify pipeline across every detected
// ecosystem and renders the aggregated outcome.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/dkoosis/breathes/internal/runner"
	"github.com/dkoosis/breathes/pkg/ecosystem"
)

var (
	// ErrNoEcosystemDetected is returned before any hook runs when the root
	// carries no known marker.
	ErrNoEcosystemDetected = errors.New("no language detected")

	// ErrSomeChecksFailed is returned after the table is printed when at
	// least one ecosystem failed.
	ErrSomeChecksFailed = errors.New("some checks failed")
)

// AllLabel names the summary row.
const AllLabel = "All"

// RunReport holds one result per detected ecosystem, in detection order.
type RunReport struct {
	Root    string
	Results []runner.EcosystemResult
	Elapsed time.Duration // wall clock since the run started, detection included

	index map[ecosystem.Ecosystem]int
}

func newRunReport(root string, capacity int) *RunReport {
	return &RunReport{
		Root:    root,
		Results: make([]runner.EcosystemResult, 0, capacity),
		index:   make(map[ecosystem.Ecosystem]int, capacity),
	}
}

func (r *RunReport) add(res runner.EcosystemResult) {
	r.index[res.Ecosystem] = len(r.Results)
	r.Results = append(r.Results, res)
}

// Result looks up the outcome for e.
func (r *RunReport) Result(e ecosystem.Ecosystem) (runner.EcosystemResult, bool) {
	i, ok := r.index[e]
	if !ok {
		return runner.EcosystemResult{}, false
	}
	return r.Results[i], true
}

// Passed reports whether every ecosystem passed.
func (r *RunReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Row is one line of the summary table.
type Row struct {
	Language string
	Passed   bool
	Elapsed  time.Duration
}

// Status is the table label for the row's outcome.
func (r Row) Status() string {
	if r.Passed {
		return "Success"
	}
	return "Failure"
}

// Take is the elapsed time in whole seconds.
func (r Row) Take() string {
	return FormatElapsed(r.Elapsed)
}

// Rows returns one row per ecosystem followed by the All row.
func (r *RunReport) Rows() []Row {
	rows := make([]Row, 0, len(r.Results)+1)
	for _, res := range r.Results {
		rows = append(rows, Row{Language: res.Ecosystem.String(), Passed: res.Passed, Elapsed: res.Elapsed})
	}
	return append(rows, Row{Language: AllLabel, Passed: r.Passed(), Elapsed: r.Elapsed})
}

// FormatElapsed renders d as truncated whole seconds, e.g. "12s".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%ds", int64(d/time.Second))
}

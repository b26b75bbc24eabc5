// Package reporter collects findings produced by the rule detectors during a single
// analysis pass.
package reporter

import (
	"slices"
	"sync"

	"github.com/sirkon/codecop/internal/coprules"
)

// Reporter collects findings discovered by detectors.
// Detectors may report concurrently.
type Reporter struct {
	mu       sync.Mutex
	findings []coprules.Finding
}

// Report adds a new finding to the reporter.
func (r *Reporter) Report(f coprules.Finding) {
	r.mu.Lock()
	r.findings = append(r.findings, f)
	r.mu.Unlock()
}

// Func returns the reporter as a plain callback for detectors.
func (r *Reporter) Func() func(coprules.Finding) {
	return r.Report
}

// Len returns the number of collected findings.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.findings)
}

// Findings returns a snapshot of all collected findings in report order.
func (r *Reporter) Findings() []coprules.Finding {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]coprules.Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

// Sorted returns a snapshot of all collected findings ordered by position, then by rule.
func (r *Reporter) Sorted() []coprules.Finding {
	out := r.Findings()
	slices.SortStableFunc(out, func(a, b coprules.Finding) int {
		if a.Pos != b.Pos {
			if a.Pos < b.Pos {
				return -1
			}
			return 1
		}
		return int(a.Rule) - int(b.Rule)
	})
	return out
}

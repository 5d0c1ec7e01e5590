package scaffold

import (
	"fmt"
	"strings"
)

// Status is the per-entry outcome of a run.
type Status int

const (
	// StatusCreated means the directory or file was newly created.
	StatusCreated Status = iota

	// StatusAlreadyExisted means a declared directory was already present.
	StatusAlreadyExisted

	// StatusSkipped means a declared file was already present and was left
	// untouched.
	StatusSkipped

	// StatusFailed means the entry could not be materialized.
	StatusFailed
)

// String returns the status as a short lowercase word.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusAlreadyExisted:
		return "exists"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome for a single manifest entry.
type Result struct {
	Entry  Entry
	Status Status

	// Err is set only when Status is StatusFailed.
	Err error
}

// Report collects the per-entry results of one generator run, in manifest
// order.
type Report struct {
	Results []Result
}

// add appends a result.
func (r *Report) add(e Entry, s Status, err error) Result {
	res := Result{Entry: e, Status: s, Err: err}
	r.Results = append(r.Results, res)
	return res
}

// Count returns how many entries finished with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed reports whether any entry failed.
func (r *Report) Failed() bool {
	return r.Count(StatusFailed) > 0
}

// Failures returns the failed results, in manifest order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Summary returns a one-line human-readable tally, e.g.
// "14 created, 3 existed, 2 skipped, 1 failed".
func (r *Report) Summary() string {
	parts := []string{
		fmt.Sprintf("%d created", r.Count(StatusCreated)),
	}
	if n := r.Count(StatusAlreadyExisted); n > 0 {
		parts = append(parts, fmt.Sprintf("%d existed", n))
	}
	if n := r.Count(StatusSkipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if n := r.Count(StatusFailed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	return strings.Join(parts, ", ")
}

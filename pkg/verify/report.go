package verify

import (
	"time"

	"github.com/dristi-ai/deployverify/pkg/check"
)

// Entry is the outcome of one check within a run.
type Entry struct {
	Name     string
	Required bool
	Result   check.Result
	Duration time.Duration
}

// Report is the ordered set of entries produced by one run.
type Report struct {
	Entries []Entry
}

// Passed reports whether every required check ended OK or WARN.
func (r Report) Passed() bool {
	for _, e := range r.Entries {
		if e.Required && e.Result.Failed() {
			return false
		}
	}
	return true
}

// ExitCode maps the aggregate result to a process exit code.
func (r Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Counts returns the number of passed, warned and failed entries.
func (r Report) Counts() (passed, warnings, failed int) {
	for _, e := range r.Entries {
		switch {
		case e.Result.OK():
			passed++
		case e.Result.Warned():
			warnings++
		default:
			failed++
		}
	}
	return passed, warnings, failed
}

// FailedRequired returns the names of required checks that failed, in order.
func (r Report) FailedRequired() []string {
	var names []string
	for _, e := range r.Entries {
		if e.Required && e.Result.Failed() {
			names = append(names, e.Name)
		}
	}
	return names
}

// Package verify runs an ordered list of checks and folds their outcomes into a report.
package verify

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dristi-ai/deployverify/pkg/check"
)

// ErrProbePanicked marks a result produced from a probe that panicked.
var ErrProbePanicked = errors.New("probe panicked")

// ErrNoProbe marks a check declared without a probe.
var ErrNoProbe = errors.New("check has no probe")

// Check is a named probe tagged with whether its failure fails the run.
type Check struct {
	Name     string
	Probe    check.Checker
	Required bool
}

// Reporter receives each entry as soon as its check has run.
type Reporter interface {
	PrintEntry(e Entry)
}

// Runner executes checks strictly in declaration order.
type Runner struct {
	Checks   []Check
	Reporter Reporter    // optional
	Logger   *zap.Logger // optional, defaults to a no-op logger
}

// Run executes every check once and returns the report. It never panics on a
// misbehaving probe; the failure is recorded as a FAIL outcome instead.
func (r *Runner) Run() Report {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	report := Report{Entries: make([]Entry, 0, len(r.Checks))}
	for _, c := range r.Checks {
		start := time.Now()
		result := runProbe(c)
		entry := Entry{
			Name:     c.Name,
			Required: c.Required,
			Result:   result,
			Duration: time.Since(start),
		}
		if entry.Name == "" {
			entry.Name = result.Name
		}

		logger.Debug("check finished",
			zap.String("check", entry.Name),
			zap.String("status", string(result.Status)),
			zap.Bool("required", entry.Required),
			zap.Duration("duration", entry.Duration),
			zap.Error(result.Err))

		report.Entries = append(report.Entries, entry)
		if r.Reporter != nil {
			r.Reporter.PrintEntry(entry)
		}
	}

	ok, warn, fail := report.Counts()
	logger.Debug("verification finished",
		zap.Int("passed", ok),
		zap.Int("warnings", warn),
		zap.Int("failed", fail),
		zap.Bool("success", report.Passed()))

	return report
}

// runProbe executes one probe, converting a panic or a missing probe into a FAIL result.
func runProbe(c Check) (result check.Result) {
	if c.Probe == nil {
		r := check.Result{Name: c.Name}
		return r.Fail("no probe configured", ErrNoProbe)
	}

	defer func() {
		if p := recover(); p != nil {
			r := check.Result{Name: c.Name}
			result = r.Fail(fmt.Sprintf("unexpected error: %v", p), fmt.Errorf("%w: %v", ErrProbePanicked, p))
		}
	}()

	result = c.Probe.Run()
	if result.Status == "" {
		result.Status = check.StatusFail
		result.AddDetail("probe returned no status")
	}
	return result
}

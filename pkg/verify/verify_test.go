package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dristi-ai/deployverify/pkg/check"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func probe(status check.Status, details ...string) check.Checker {
	return check.CheckerFunc(func() check.Result {
		return check.Result{Status: status, Details: details}
	})
}

type recordingReporter struct {
	entries []Entry
}

func (r *recordingReporter) PrintEntry(e Entry) {
	r.entries = append(r.entries, e)
}

func TestRunner_OneOutcomePerCheckInOrder(t *testing.T) {
	calls := 0
	counting := func(status check.Status) check.Checker {
		return check.CheckerFunc(func() check.Result {
			calls++
			return check.Result{Status: status}
		})
	}

	reporter := &recordingReporter{}
	runner := &Runner{
		Checks: []Check{
			{Name: "health: render", Probe: counting(check.StatusFail)},
			{Name: "lib: TensorFlow", Probe: counting(check.StatusWarn)},
			{Name: "pkg: flask", Probe: counting(check.StatusOK), Required: true},
		},
		Reporter: reporter,
	}

	report := runner.Run()

	require.Len(t, report.Entries, 3)
	assert.Equal(t, 3, calls, "each probe runs exactly once")
	names := []string{report.Entries[0].Name, report.Entries[1].Name, report.Entries[2].Name}
	assert.Equal(t, []string{"health: render", "lib: TensorFlow", "pkg: flask"}, names)
	assert.Equal(t, report.Entries, reporter.entries, "reporter sees every entry in order")
}

func TestRunner_RequiredFailureFailsRun(t *testing.T) {
	runner := &Runner{Checks: []Check{
		{Name: "python: python3", Probe: probe(check.StatusOK), Required: true},
		{Name: "pkg: flask", Probe: probe(check.StatusFail, "not installed"), Required: true},
		{Name: "env: PORT", Probe: probe(check.StatusWarn)},
	}}

	report := runner.Run()

	assert.False(t, report.Passed())
	assert.Equal(t, 1, report.ExitCode())
	assert.Equal(t, []string{"pkg: flask"}, report.FailedRequired())
}

func TestRunner_OptionalFailuresDoNotFailRun(t *testing.T) {
	runner := &Runner{Checks: []Check{
		{Name: "health: render", Probe: probe(check.StatusFail)},
		{Name: "health: vercel", Probe: probe(check.StatusFail)},
		{Name: "lib: TensorFlow", Probe: probe(check.StatusOK)},
		{Name: "pkg: flask", Probe: probe(check.StatusWarn), Required: true},
	}}

	report := runner.Run()

	assert.True(t, report.Passed(), "a warning on a required check still passes")
	assert.Equal(t, 0, report.ExitCode())
	assert.Empty(t, report.FailedRequired())

	passed, warnings, failed := report.Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 2, failed)
}

func TestRunner_PanickingProbeIsRecordedAsFail(t *testing.T) {
	runner := &Runner{Checks: []Check{
		{Name: "boom", Probe: check.CheckerFunc(func() check.Result { panic("nil map write") }), Required: true},
		{Name: "after", Probe: probe(check.StatusOK)},
	}}

	var report Report
	require.NotPanics(t, func() { report = runner.Run() })

	require.Len(t, report.Entries, 2)
	boom := report.Entries[0].Result
	assert.Equal(t, check.StatusFail, boom.Status)
	assert.Contains(t, boom.Details, "unexpected error: nil map write")
	assert.True(t, errors.Is(boom.Err, ErrProbePanicked))
	assert.True(t, report.Entries[1].Result.OK(), "the run continues after a panic")
	assert.Equal(t, 1, report.ExitCode())
}

func TestRunner_MissingProbeAndEmptyStatusFail(t *testing.T) {
	runner := &Runner{Checks: []Check{
		{Name: "nothing"},
		{Name: "silent", Probe: check.CheckerFunc(func() check.Result { return check.Result{} })},
	}}

	report := runner.Run()

	require.Len(t, report.Entries, 2)
	assert.True(t, errors.Is(report.Entries[0].Result.Err, ErrNoProbe))
	assert.Equal(t, check.StatusFail, report.Entries[1].Result.Status)
	assert.Contains(t, report.Entries[1].Result.Details, "probe returned no status")
}

func TestRunner_EntryNameFallsBackToResultName(t *testing.T) {
	runner := &Runner{Checks: []Check{
		{Probe: check.CheckerFunc(func() check.Result {
			return check.Result{Name: "env: PORT", Status: check.StatusOK}
		})},
	}}

	report := runner.Run()

	assert.Equal(t, "env: PORT", report.Entries[0].Name)
}

func TestRunner_EmptyRunPasses(t *testing.T) {
	report := (&Runner{}).Run()

	assert.Empty(t, report.Entries)
	assert.True(t, report.Passed())
	assert.Equal(t, 0, report.ExitCode())
}

func TestRunner_LogsEachCheck(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	runner := &Runner{
		Checks: []Check{
			{Name: "pkg: flask", Probe: probe(check.StatusOK), Required: true},
			{Name: "env: PORT", Probe: probe(check.StatusWarn)},
		},
		Logger: zap.New(core),
	}

	runner.Run()

	finished := logs.FilterMessage("check finished").All()
	require.Len(t, finished, 2)
	assert.Equal(t, "pkg: flask", finished[0].ContextMap()["check"])
	assert.Equal(t, "WARN", finished[1].ContextMap()["status"])
	assert.Equal(t, 1, logs.FilterMessage("verification finished").Len())
}

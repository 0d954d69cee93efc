package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dristi-ai/deployverify/pkg/config"
	"github.com/dristi-ai/deployverify/pkg/output"
	"github.com/dristi-ai/deployverify/pkg/verify"
)

// ErrChecksFailed is returned when a required check fails.
// The returned error causes main to exit with code 1.
var ErrChecksFailed = errors.New("required checks failed")

// now is replaced in tests for a stable header.
var now = time.Now

// runSuite prints the banner, runs the checks in order and prints the summary.
func runSuite(cmd *cobra.Command, title string, checks []verify.Check, notes *config.Notes) error {
	printer := output.New(cmd.OutOrStdout(), output.ColorEnabled(noColor))
	printer.PrintHeader(title, now())

	runner := &verify.Runner{
		Checks:   checks,
		Reporter: printer,
		Logger:   logger,
	}
	report := runner.Run()

	printer.PrintSummary(report)
	if notes != nil {
		printer.PrintSection("Deployment status summary", notes.Summary, false)
		printer.PrintSection("Next steps", notes.NextSteps, true)
	}

	if report.ExitCode() != 0 {
		return ErrChecksFailed
	}
	return nil
}

package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jwalton/go-supportscolor"

	"github.com/dristi-ai/deployverify/pkg/check"
	"github.com/dristi-ai/deployverify/pkg/verify"
)

const ruleWidth = 50

// ColorEnabled reports whether stdout should receive ANSI colours.
func ColorEnabled(noColor bool) bool {
	return !noColor && supportscolor.Stdout().SupportsColor
}

// Printer writes human-readable verification output.
type Printer struct {
	out   io.Writer
	green *color.Color
	yel   *color.Color
	red   *color.Color
	dim   *color.Color
	bold  *color.Color
}

// New creates a printer writing to out (stdout when nil).
func New(out io.Writer, useColor bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	p := &Printer{
		out:   out,
		green: color.New(color.FgGreen),
		yel:   color.New(color.FgYellow),
		red:   color.New(color.FgRed),
		dim:   color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.green, p.yel, p.red, p.dim, p.bold} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintHeader prints the run banner with a timestamp.
func (p *Printer) PrintHeader(title string, now time.Time) {
	_, _ = fmt.Fprintln(p.out, p.bold.Sprint(title))
	_, _ = fmt.Fprintln(p.out, strings.Repeat("=", ruleWidth))
	_, _ = fmt.Fprintf(p.out, "%s %s\n\n", p.dim.Sprint("timestamp:"), now.Format("2006-01-02 15:04:05"))
}

// PrintEntry outputs a check result with coloured status; it implements verify.Reporter.
func (p *Printer) PrintEntry(e verify.Entry) {
	p.PrintResult(e.Name, e.Result)
}

// PrintResult outputs a named result with its details indented under the name.
func (p *Printer) PrintResult(name string, r check.Result) {
	tag := statusTag(r)
	label := p.statusColor(r).Sprint(tag)
	indent := strings.Repeat(" ", len(tag)+1)

	_, _ = fmt.Fprintf(p.out, "%s %s\n", label, name)
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(p.out, "%s%s\n", indent, p.formatLabel(d))
	}
}

// PrintSummary prints the aggregate counts and verdict of a run.
func (p *Printer) PrintSummary(r verify.Report) {
	passed, warnings, failed := r.Counts()

	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))
	_, _ = fmt.Fprintf(p.out, "%d passed, %d %s, %d failed\n", passed, warnings, plural(warnings, "warning"), failed)

	if r.Passed() {
		_, _ = fmt.Fprintln(p.out, p.green.Sprint("verification passed"))
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s (required: %s)\n",
		p.red.Sprint("verification failed"), strings.Join(r.FailedRequired(), ", "))
}

// PrintSection prints a titled block of lines, optionally numbered.
func (p *Printer) PrintSection(title string, lines []string, numbered bool) {
	if len(lines) == 0 {
		return
	}
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out, p.bold.Sprint(title))
	for i, line := range lines {
		if numbered {
			_, _ = fmt.Fprintf(p.out, "%d. %s\n", i+1, line)
		} else {
			_, _ = fmt.Fprintf(p.out, "- %s\n", line)
		}
	}
}

// formatLabel dims the "key:" prefix of a detail line.
func (p *Printer) formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx <= 0 || strings.HasPrefix(detail, " ") {
		return detail
	}
	return p.dim.Sprint(detail[:idx+1]) + detail[idx+1:]
}

func statusTag(r check.Result) string {
	switch {
	case r.OK():
		return "[OK]"
	case r.Warned():
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}

func (p *Printer) statusColor(r check.Result) *color.Color {
	switch {
	case r.OK():
		return p.green
	case r.Warned():
		return p.yel
	default:
		return p.red
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

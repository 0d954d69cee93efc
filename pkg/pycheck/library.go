package pycheck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/dristi-ai/deployverify/pkg/check"
	"github.com/dristi-ai/deployverify/pkg/version"
)

// TensorFlowDeviceQuery counts visible GPU devices for TensorFlow.
const TensorFlowDeviceQuery = `len(m.config.list_physical_devices("GPU"))`

// LibraryCheck imports a numerical library in the interpreter and inspects its
// version and accelerator devices.
type LibraryCheck struct {
	Module      string              // importable module name, e.g. "tensorflow" (required)
	Display     string              // name used in output (default: Module)
	Python      string              // interpreter executable (default: python3)
	DeviceQuery string              // Python expression over module m counting GPU devices; empty skips the query
	ExpectCPU   bool                // warn when a GPU build is detected
	Constraint  *semver.Constraints // expected version range, mismatch warns
	Timeout     time.Duration       // timeout for the import (default: 30s)
	Runner      CmdRunner           // injected for testing
}

// Run executes the library check.
func (c *LibraryCheck) Run() check.Result {
	display := c.Display
	if display == "" {
		display = c.Module
	}
	result := check.Result{
		Name: "lib: " + display,
	}

	if c.Module == "" {
		return result.Failf("module name is required")
	}

	inv := newInvocation(c.Python, c.Timeout, c.Runner)
	if _, err := inv.lookPath(); err != nil {
		return result.Fail(fmt.Sprintf("cannot import %s: %s not found in PATH", display, inv.python), err)
	}

	stdout, stderr, err := inv.run("-c", ImportScript(c.Module, c.DeviceQuery))
	if err != nil {
		if errors.Is(err, errTimeout) {
			return result.Failf("import %v", err)
		}
		if msg := lastLine(stderr); msg != "" {
			result.AddDetail(msg)
		}
		return result.Fail(
			fmt.Sprintf("%s not installed", display),
			fmt.Errorf("%w: module %s: %v", ErrDependencyMissing, c.Module, err),
		)
	}

	report := lastLine(stdout)
	if !gjson.Valid(report) {
		return result.Failf("unexpected import output: %q", report)
	}

	installed := gjson.Get(report, "version").String()
	gpus := gjson.Get(report, "gpus").Int()
	result.AddDetailf("version: %s", installed)
	if c.DeviceQuery != "" {
		result.AddDetailf("gpu devices: %d", gpus)
	}

	var warnings []string

	if c.Constraint != nil {
		v, err := version.Extract(installed)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("could not parse version %q", installed))
		case !version.Satisfies(v, c.Constraint):
			warnings = append(warnings, fmt.Sprintf("version %s does not satisfy %s", installed, c.Constraint))
		}
	}

	if c.ExpectCPU {
		if strings.Contains(installed, "cpu") || gpus == 0 {
			result.AddDetail("CPU build detected (correct for deployment)")
		} else {
			warnings = append(warnings, fmt.Sprintf("GPU build detected (%d devices), CPU-only expected", gpus))
		}
	}

	if len(warnings) > 0 {
		for _, w := range warnings[:len(warnings)-1] {
			result.AddDetail(w)
		}
		return result.Warn(
			warnings[len(warnings)-1],
			fmt.Errorf("%w: %s", ErrConfigurationWarning, strings.Join(warnings, "; ")),
		)
	}

	return result.Pass()
}

// ImportScript returns the Python program that imports module and prints a
// one-line JSON report with its version and GPU device count.
func ImportScript(module, deviceQuery string) string {
	query := "0"
	if deviceQuery != "" {
		query = deviceQuery
	}
	return fmt.Sprintf(`import importlib, json
m = importlib.import_module(%q)
try:
    gpus = %s
except Exception:
    gpus = 0
print(json.dumps({"version": str(getattr(m, "__version__", "")), "gpus": gpus}))
`, module, query)
}

package pycheck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/dristi-ai/deployverify/pkg/check"
	"github.com/dristi-ai/deployverify/pkg/version"
)

// InterpreterCheck verifies that the Python interpreter exists and its version
// satisfies the deployment constraint.
type InterpreterCheck struct {
	Python     string              // interpreter executable (default: python3)
	Constraint *semver.Constraints // required version range, nil accepts any
	Timeout    time.Duration       // timeout for the version command (default: 30s)
	Runner     CmdRunner           // injected for testing
}

// Run executes the interpreter check.
func (c *InterpreterCheck) Run() check.Result {
	inv := newInvocation(c.Python, c.Timeout, c.Runner)
	result := check.Result{
		Name: "python: " + inv.python,
	}

	path, err := inv.lookPath()
	if err != nil {
		return result.Fail("not found in PATH", err)
	}
	result.AddDetailf("path: %s", path)

	stdout, stderr, err := inv.run("--version")
	if err != nil {
		if errors.Is(err, errTimeout) {
			return result.Failf("version command %v", err)
		}
		return result.Fail(fmt.Sprintf("version command failed: %v", err), err)
	}

	// Python 2 and early 3.x print the version on stderr.
	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}

	v, err := version.Extract(output)
	if err != nil {
		return result.Failf("could not parse version from output: %v", err)
	}
	result.AddDetailf("version: %s", v)

	if !version.Satisfies(v, c.Constraint) {
		return result.Fail(
			fmt.Sprintf("version %s does not satisfy %s", v, c.Constraint),
			fmt.Errorf("%w: python %s does not satisfy %s", ErrVersionMismatch, v, c.Constraint),
		)
	}

	return result.Pass()
}

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

// PackageCheck verifies that a Python distribution is installed, using pip's metadata.
type PackageCheck struct {
	Package    string              // distribution name as known to pip (required)
	Python     string              // interpreter executable (default: python3)
	Constraint *semver.Constraints // required version range, nil accepts any
	Timeout    time.Duration       // timeout for pip (default: 30s)
	Runner     CmdRunner           // injected for testing
}

// Run executes the package check.
func (c *PackageCheck) Run() check.Result {
	result := check.Result{
		Name: "pkg: " + c.Package,
	}

	if c.Package == "" {
		return result.Failf("package name is required")
	}

	inv := newInvocation(c.Python, c.Timeout, c.Runner)
	if _, err := inv.lookPath(); err != nil {
		return result.Fail(fmt.Sprintf("cannot inspect packages: %s not found in PATH", inv.python), err)
	}

	stdout, stderr, err := inv.run("-m", "pip", "show", c.Package)
	if err != nil {
		if errors.Is(err, errTimeout) {
			return result.Failf("pip show %v", err)
		}
		if msg := lastLine(stderr); msg != "" {
			result.AddDetail(msg)
		}
		return result.Fail("not installed", fmt.Errorf("%w: package %s: %v", ErrDependencyMissing, c.Package, err))
	}

	raw, ok := showField(stdout, "Version")
	if !ok {
		return result.Fail("not installed", fmt.Errorf("%w: package %s", ErrDependencyMissing, c.Package))
	}
	result.AddDetailf("version: %s", raw)

	if c.Constraint == nil {
		return result.Pass()
	}

	v, err := version.Extract(raw)
	if err != nil {
		return result.Failf("could not parse version %q: %v", raw, err)
	}
	if !version.Satisfies(v, c.Constraint) {
		return result.Fail(
			fmt.Sprintf("version %s does not satisfy %s", raw, c.Constraint),
			fmt.Errorf("%w: %s %s does not satisfy %s", ErrVersionMismatch, c.Package, raw, c.Constraint),
		)
	}

	return result.Pass()
}

// showField returns the value of a "Key: value" line from pip show output.
func showField(output, key string) (string, bool) {
	prefix := key + ":"
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			value := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			return value, value != ""
		}
	}
	return "", false
}

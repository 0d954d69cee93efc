package pycheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultPython is the interpreter used when none is configured.
	DefaultPython = "python3"

	// DefaultTimeout bounds every interpreter invocation.
	DefaultTimeout = 30 * time.Second
)

// errTimeout marks an invocation that hit its deadline.
var errTimeout = errors.New("timed out")

// invocation holds the shared settings of every Python probe.
type invocation struct {
	python  string
	timeout time.Duration
	runner  CmdRunner
}

func newInvocation(python string, timeout time.Duration, runner CmdRunner) invocation {
	if python == "" {
		python = DefaultPython
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if runner == nil {
		runner = &RealCmdRunner{}
	}
	return invocation{python: python, timeout: timeout, runner: runner}
}

// lookPath resolves the interpreter, wrapping a miss in ErrDependencyMissing.
func (i invocation) lookPath() (string, error) {
	path, err := i.runner.LookPath(i.python)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH: %v", ErrDependencyMissing, i.python, err)
	}
	return path, nil
}

// run executes the interpreter with args under the configured timeout.
func (i invocation) run(args ...string) (stdout, stderr string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()

	stdout, stderr, err = i.runner.RunCommandContext(ctx, i.python, args...)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return stdout, stderr, fmt.Errorf("%w after %s", errTimeout, i.timeout)
	}
	return stdout, stderr, err
}

// lastLine returns the last non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for idx := len(lines) - 1; idx >= 0; idx-- {
		if line := strings.TrimSpace(lines[idx]); line != "" {
			return line
		}
	}
	return ""
}

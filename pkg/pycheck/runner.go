package pycheck

import (
	"bytes"
	"context"
	"os/exec"
)

// CmdRunner abstracts command execution for testability.
type CmdRunner interface {
	LookPath(file string) (string, error)
	RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealCmdRunner implements CmdRunner using actual OS commands.
type RealCmdRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealCmdRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommandContext executes a command with a context and returns its output.
func (r *RealCmdRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

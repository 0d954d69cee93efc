package testutil

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a test double for HTTP clients.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// CommandResult is a canned subprocess outcome for MockCmdRunner.
type CommandResult struct {
	Stdout string
	Stderr string
	Err    error
}

// MockCmdRunner is a test double for command runners. Commands are keyed by
// their full command line ("python3 -m pip show flask"); unknown commands
// return NotFound. RunFunc, when set, takes precedence over Commands.
type MockCmdRunner struct {
	Paths    map[string]string
	Commands map[string]CommandResult
	RunFunc  func(name string, args ...string) CommandResult
	NotFound error
	Calls    []string
}

// LookPath returns the configured path or an error for unknown executables.
func (m *MockCmdRunner) LookPath(file string) (string, error) {
	if p, ok := m.Paths[file]; ok {
		return p, nil
	}
	return "", &lookPathError{file: file}
}

// RunCommandContext records the call and returns the canned result.
func (m *MockCmdRunner) RunCommandContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	line := strings.Join(append([]string{name}, args...), " ")
	m.Calls = append(m.Calls, line)
	if m.RunFunc != nil {
		r := m.RunFunc(name, args...)
		return r.Stdout, r.Stderr, r.Err
	}
	if r, ok := m.Commands[line]; ok {
		return r.Stdout, r.Stderr, r.Err
	}
	return "", "", m.NotFound
}

type lookPathError struct {
	file string
}

func (e *lookPathError) Error() string {
	return "exec: \"" + e.file + "\": executable file not found in $PATH"
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

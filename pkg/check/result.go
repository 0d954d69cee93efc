package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "health: render", "pkg: flask"
	Status  Status   // OK, WARN or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for warnings and failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Warned returns true if the check passed with a warning.
func (r Result) Warned() bool {
	return r.Status == StatusWarn
}

// Failed returns true for failed checks and for results that never got a status.
func (r Result) Failed() bool {
	return r.Status != StatusOK && r.Status != StatusWarn
}

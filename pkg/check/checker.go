package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of a deployment
// and returns a Result classifying it as OK, WARN or FAIL.
//
// Implementations:
//   - healthcheck.Check: polls deployment health endpoints
//   - pycheck.InterpreterCheck: verifies the Python interpreter version
//   - pycheck.PackageCheck: verifies an installed Python package
//   - pycheck.LibraryCheck: inspects the numerical library build
//   - envcheck.Check: displays environment variables
//   - syscheck.Check: reports host CPU capabilities
type Checker interface {
	Run() Result
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func() Result

// Run calls f.
func (f CheckerFunc) Run() Result {
	return f()
}

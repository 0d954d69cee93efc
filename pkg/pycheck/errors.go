package pycheck

import "errors"

var (
	// ErrDependencyMissing is returned when an interpreter, package or module is not installed.
	ErrDependencyMissing = errors.New("dependency missing")

	// ErrConfigurationWarning is returned when a dependency is installed but configured
	// differently than the deployment expects (for example a GPU build where CPU-only is expected).
	ErrConfigurationWarning = errors.New("configuration warning")

	// ErrVersionMismatch is returned when an installed version does not satisfy its constraint.
	ErrVersionMismatch = errors.New("version mismatch")
)

package healthcheck

import "errors"

var (
	// ErrUnreachable is returned when a deployment could not be reached or timed out.
	ErrUnreachable = errors.New("deployment unreachable")

	// ErrUnexpectedStatus is returned when a health endpoint answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected health status")

	// ErrNoHealthyDeployment is returned when no candidate URL answered 200.
	ErrNoHealthyDeployment = errors.New("no healthy deployment found")
)

// ErrDegraded is returned when a deployment answers 200 but its health body reports a problem.
var ErrDegraded = errors.New("deployment reports degraded health")

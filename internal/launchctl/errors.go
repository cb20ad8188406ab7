package launchctl

import "fmt"

// SupervisorUnavailableError reports that the supervision binary could not be
// started at all (missing, not executable, permission denied).
type SupervisorUnavailableError struct {
	Binary string
	Err    error
}

func (e *SupervisorUnavailableError) Error() string {
	return fmt.Sprintf("cannot run %s: %v", e.Binary, e.Err)
}

func (e *SupervisorUnavailableError) Unwrap() error { return e.Err }

package logbook

import "fmt"

// ValidationError rejects a commit before any store call is attempted. It is
// local and recoverable: the user corrects the staged input and resubmits.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid log input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid log input: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

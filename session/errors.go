package session

import (
	"fmt"
	"time"
)

// AuthenticationError reports that the logged-in marker never appeared
// within the bounded manual-login wait. It is fatal for the run.
type AuthenticationError struct {
	Waited time.Duration
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication not detected after %s of manual-login wait", e.Waited)
}

// NavigationError reports an unrecoverable page navigation failure.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// FilterError reports a single failed filter sub-step. It is informational:
// the filter applier records it and continues.
type FilterError struct {
	Step string
	Err  error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter step %q failed: %v", e.Step, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

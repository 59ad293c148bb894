package cli

import "fmt"

// Exit codes for the plancheck CLI. These support scripting and CI
// composition: 0 means the plan may proceed, 1 means it was blocked by a
// safety rule, 2 means the profile never reached the engine.
const (
	// ExitSuccess indicates the plan cleared every blocking check
	ExitSuccess = 0

	// ExitBlocked indicates one or more blocking safety findings
	ExitBlocked = 1

	// ExitInvalidProfile indicates the profile failed to load or violated
	// the input contract
	ExitInvalidProfile = 2
)

// exitError carries an exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// newExitError wraps err with the given exit code.
func newExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code an error maps to.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitInvalidProfile
}

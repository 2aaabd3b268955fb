package entities

import "errors"

// Sentinel errors for the router's failure taxonomy. Execution and
// classification failures carry no sentinel; they are wrapped with context
// where they occur.
var (
	// ErrEmptyQuestion is returned for blank or whitespace-only input.
	ErrEmptyQuestion = errors.New("empty question")

	// ErrEmployeeNotFound is returned when no resolution tier matches.
	ErrEmployeeNotFound = errors.New("no matching employee")
)

// SafetyError reports a statement rejected by the query guard. It is
// always fatal to the request: a rejected statement is never executed.
type SafetyError struct {
	Reason string
}

func (e *SafetyError) Error() string {
	return "unsafe statement: " + e.Reason
}

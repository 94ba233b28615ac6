package schedule

import "fmt"

// ParseError indicates the completion response could not be normalized into
// a weekly task table. It is fatal to the current submission: the caller
// surfaces the message verbatim and discards the attempt, showing no
// partial result.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing schedule response: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

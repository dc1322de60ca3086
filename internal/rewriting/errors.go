package rewriting

import "fmt"

// ModelUnavailableError represents a failed or impossible model call. It is
// internal to the rewriting boundary: callers of Rewrite never see it, they
// get the rule-based fallback output instead.
type ModelUnavailableError struct {
	Message string
	Cause   error
}

func (e *ModelUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model unavailable: %s", e.Message)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Cause
}

package engine

import "fmt"

// InvalidInputError reports input or configuration rejected before the
// pipeline runs.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

// PipelineError reports a rewrite that failed mid-pipeline. Stage names the
// stage that was executing when the failure occurred.
type PipelineError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rewrite failed during %s: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("rewrite failed during %s: %s", e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

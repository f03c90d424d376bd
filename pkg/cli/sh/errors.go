package sh

import (
	"fmt"
	"strings"
)

// InputError ties an error to the command argument causing it.
type InputError struct {
	Input string
	Err   error
}

// Error implements error.
func (e *InputError) Error() string {
	return fmt.Sprintf("%q: %v", e.Input, e.Err)
}

// Unwrap supports errors.Is and errors.As.
func (e *InputError) Unwrap() error {
	return e.Err
}

// AggregatedError aggregates errors from evaluating multiple arguments.
type AggregatedError struct {
	Errors []error
}

// Error implements error
func (e *AggregatedError) Error() string {
	switch len(e.Errors) {
	case 0:
		return ""
	case 1:
		return e.Errors[0].Error()
	}
	msg := make([]string, len(e.Errors)+1)
	msg[0] = "Multiple errors:"
	for n, err := range e.Errors {
		msg[n+1] = err.Error()
	}
	return strings.Join(msg, "\n")
}

// AddInput records err against an input. nil is skipped.
func (e *AggregatedError) AddInput(input string, err error) *AggregatedError {
	if err != nil {
		e.Errors = append(e.Errors, &InputError{Input: input, Err: err})
	}
	return e
}

// Aggregate returns aggregated error if any error happened.
func (e *AggregatedError) Aggregate() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

package angle

import "errors"

// ErrInvalidArgument is matched by every InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError indicates a non-finite numeric input.
type InvalidArgumentError struct {
	// Param names the rejected input: degrees, radians, gradians or turns.
	Param string
}

// Error implements error.
func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Param
}

// Is implements errors.Is.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(param string) error {
	return &InvalidArgumentError{Param: param}
}

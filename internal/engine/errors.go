package engine

import "errors"

var (
	// ErrValidation indicates a flight path that cannot be flown: an
	// unsupported planet or action.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMass indicates a negative or non-finite mass.
	ErrInvalidMass = errors.New("invalid mass")
)

// validationError marks a domain failure as ErrValidation while keeping its
// message unchanged.
type validationError struct {
	err error
}

func (e *validationError) Error() string {
	return e.err.Error()
}

func (e *validationError) Unwrap() []error {
	return []error{ErrValidation, e.err}
}

func asValidation(err error) error {
	return &validationError{err: err}
}

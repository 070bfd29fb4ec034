package fuel

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPlanet indicates a body missing from the gravity table.
	ErrUnsupportedPlanet = errors.New("unsupported planet")

	// ErrUnsupportedAction indicates an action other than launch or land.
	ErrUnsupportedAction = errors.New("unsupported action")

	// ErrFuelOverflow indicates a fuel amount too large to represent.
	ErrFuelOverflow = errors.New("fuel requirement out of range")
)

// ErrorKind classifies a calculation failure.
type ErrorKind int

const (
	UnsupportedPlanet ErrorKind = iota + 1
	UnsupportedAction
)

// String returns the human-readable noun for the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedPlanet:
		return "planet"
	case UnsupportedAction:
		return "action"
	default:
		return "unknown"
	}
}

// Error is a typed calculation failure carrying the offending token.
type Error struct {
	Kind  ErrorKind
	Token string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Unsupported %s: %s", e.Kind, e.Token)
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case UnsupportedPlanet:
		return target == ErrUnsupportedPlanet
	case UnsupportedAction:
		return target == ErrUnsupportedAction
	}
	return false
}

func unsupportedPlanet(body string) *Error {
	return &Error{Kind: UnsupportedPlanet, Token: body}
}

func unsupportedAction(action Action) *Error {
	return &Error{Kind: UnsupportedAction, Token: string(action)}
}

package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig reports construction parameters that cannot produce a valid
	// or stable simulation.
	ErrConfig = errors.New("wave: invalid configuration")

	// ErrOutOfRange reports grid coordinates or physical points outside the
	// simulated domain.
	ErrOutOfRange = errors.New("wave: coordinates out of range")

	// ErrInvalidArgument reports a negative or non-finite time delta.
	ErrInvalidArgument = errors.New("wave: invalid argument")
)

// RangeError carries the offending node coordinates of an out-of-range access.
type RangeError struct {
	X, Z int
	N    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wave: node (%d,%d) outside [0,%d]x[0,%d]", e.X, e.Z, e.N, e.N)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

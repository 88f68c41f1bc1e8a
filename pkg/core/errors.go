package core

import "github.com/pkg/errors"

var (
	// ErrInvalidSize reports a spin buffer whose length is not a perfect
	// square of at least one.
	ErrInvalidSize = errors.New("invalid lattice size")
	// ErrInvalidTemperature reports a temperature that is not strictly
	// positive.
	ErrInvalidTemperature = errors.New("invalid temperature")
)

package recipe

import "errors"

// Sentinel errors for recipe operations.
var (
	// ErrUnknownMode indicates a mode value outside the enumerated set.
	ErrUnknownMode = errors.New("unknown recipe mode")

	// ErrNilLibrary indicates no host filter library was supplied.
	ErrNilLibrary = errors.New("nil filter library")

	// ErrNegativeThreshold indicates a threshold below zero.
	ErrNegativeThreshold = errors.New("thresholds must be positive")
)

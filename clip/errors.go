package clip

import "errors"

// Sentinel errors for clip and frame-remapping operations.
// These errors enable reliable error classification using errors.Is().

// Range and mapping errors.
var (
	// ErrBadRange indicates a structurally invalid range value,
	// such as the zero Range. Reversed bounds are not an error; they
	// produce a defined degenerate (empty) sub-range downstream.
	ErrBadRange = errors.New("structurally invalid range")

	// ErrIndexOutOfRange indicates a resolved (clip, frame) reference
	// falls outside its clip's bounds. Raised eagerly, before any
	// frame fetch occurs.
	ErrIndexOutOfRange = errors.New("frame index out of range")

	// ErrFormatMismatch indicates two clips passed to a selection
	// operation differ in per-frame format.
	ErrFormatMismatch = errors.New("clip format mismatch")

	// ErrInvalidInput indicates a missing or empty required argument,
	// such as zero source clips or an empty index mapping.
	ErrInvalidInput = errors.New("invalid input")
)

// Frame property errors.
var (
	// ErrPropNotFound indicates the requested property key is absent.
	ErrPropNotFound = errors.New("frame property not found")

	// ErrPropWrongType indicates the property exists but holds a
	// different type than requested.
	ErrPropWrongType = errors.New("frame property has wrong type")
)

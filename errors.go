package annulus

import "errors"

// Sentinel errors returned (wrapped) by layout operations. Match them with
// [errors.Is]; the wrapping message carries the offending sector, track, or
// parameter.
var (
	// ErrConfig reports invalid sector, track, or layout parameters, including
	// angle budgets that exceed the full circle.
	ErrConfig = errors.New("annulus: invalid configuration")

	// ErrState reports an operation against a session in the wrong state, such
	// as mutating a closed layout or opening a second session without
	// compositing.
	ErrState = errors.New("annulus: invalid session state")

	// ErrCapacity reports an exhausted radial budget: the track stack has no
	// room left inside the drawing radius.
	ErrCapacity = errors.New("annulus: capacity exhausted")

	// ErrLookup reports an unknown sector name or track index.
	ErrLookup = errors.New("annulus: unknown name")
)

package leftovers

import "errors"

var (
	// ErrInvalidInput marks a rejected request: a blank required
	// ingredient name or a filters value outside its documented range.
	// No partial result accompanies it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream marks a failure to load pantry or recipe data from
	// storage. The engine does not retry; retry policy belongs to the
	// caller.
	ErrUpstream = errors.New("upstream data unavailable")
)

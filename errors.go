package hybridvec

import "errors"

var (
	// ErrInvalidCapacity signals a non-positive inline capacity.
	ErrInvalidCapacity = errors.New("hybridvec: inline capacity must be positive")
	// ErrInvalidReserve signals a negative spill reserve.
	ErrInvalidReserve = errors.New("hybridvec: spill reserve must not be negative")
	// ErrBuilderCompleted signals that a builder has already emitted a vector and
	// it's illegal to stage further values.
	ErrBuilderCompleted = errors.New("hybridvec: forbidden to stage values; builder has completed a vector")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("hybridvec: illegal arguments")
)

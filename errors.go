package sortedset

import "errors"

// Error kinds returned by this package. They are sentinel values, not a
// custom error type, so callers compare with errors.Is.
var (
	// ErrUnsupportedType is returned when an Item (or a value passed to
	// FromAny) contains a kind rejected by the value contract: float,
	// reference, pid/port, or function.
	ErrUnsupportedType = errors.New("sortedset: unsupported item type")
	// ErrOutOfBounds is returned by At when index >= Size() and no
	// default value was supplied.
	ErrOutOfBounds = errors.New("sortedset: index out of bounds")
	// ErrNotPresent is returned by FindIndex and IndexRemove when the
	// item is not a member of the set.
	ErrNotPresent = errors.New("sortedset: item not present")
	// ErrInvalidInput is returned by FromProperEnumerable when its
	// precondition (strictly increasing, duplicate-free input) is
	// violated, and by New when given a non-positive capacity.
	ErrInvalidInput = errors.New("sortedset: invalid input")
	// ErrContended is returned under the TryAcquire lock policy when the
	// lock is held by another caller at call time.
	ErrContended = errors.New("sortedset: lock contended")
)

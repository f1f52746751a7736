package notebook

import "errors"

// Failure kinds surfaced by notebook operations. Callers classify with
// errors.Is. Every failed operation leaves the notebook unchanged.
var (
	// ErrNotFound reports a lookup (by content handle, tab handle, or page
	// ID) that matched no page.
	ErrNotFound = errors.New("page not found")

	// ErrOutOfRange reports a numeric index outside the page sequence.
	ErrOutOfRange = errors.New("index out of range")
)

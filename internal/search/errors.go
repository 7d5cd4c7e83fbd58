package search

import "errors"

var (
	// ErrUnsupportedDirection is returned when a backward scan is requested.
	// Only forward scanning is implemented.
	ErrUnsupportedDirection = errors.New("backward search not supported")

	// ErrNoOperation is returned when a scan is restarted without a query
	// and no earlier operation exists to take it from.
	ErrNoOperation = errors.New("no search string given and no previous search operation")
)

package repository

import "errors"

// Sentinel kinds for catalog store errors.
var (
	// ErrBadData means a benchmark file existed but could not be read or
	// parsed. This aborts the whole load.
	ErrBadData = errors.New("malformed benchmark data")
)

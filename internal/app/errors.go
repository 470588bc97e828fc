package app

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrMissingPart means the lookup query was blank.
	ErrMissingPart = errors.New("missing part name")

	// ErrUnknownCategory means an explicit category was neither cpu nor gpu.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNotFound means no benchmark record matched the query.
	ErrNotFound = errors.New("benchmark not found")

	// ErrCatalogEmpty means every catalog is empty, typically because the
	// benchmark directory was never found.
	ErrCatalogEmpty = errors.New("benchmark files are empty or not loaded")

	// ErrPriceFeedDisabled means no price API key is configured.
	ErrPriceFeedDisabled = errors.New("price feed is not configured")
)

package selection

import "errors"

// Sentinel kinds for selection errors.
var (
	// ErrNoPrices means the caller supplied no usable price observations.
	ErrNoPrices = errors.New("no valid prices provided")

	// ErrNotFound means no ranked part fell inside the price window.
	ErrNotFound = errors.New("no parts found within the given price range")
)

package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrEmptyInput means the request carried no parts at all.
	ErrEmptyInput = errors.New("missing parts array")
)

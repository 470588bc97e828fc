package pricefeed

import "errors"

// Sentinel kinds for price feed errors.
var (
	ErrEmptyQuery    = errors.New("missing query")
	ErrMissingAPIKey = errors.New("missing price API key")
	ErrRateLimited   = errors.New("price API rate limit hit")
	ErrUpstream      = errors.New("price API request failed")
)

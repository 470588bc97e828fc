package api

import (
	"errors"
	"net/http"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/internal/adapters/repository"
	"github.com/partstack/benchrank/internal/app"
	"github.com/partstack/benchrank/internal/domain/ranking"
	"github.com/partstack/benchrank/internal/domain/selection"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrMissingPart),
		errors.Is(err, app.ErrUnknownCategory),
		errors.Is(err, ranking.ErrEmptyInput),
		errors.Is(err, selection.ErrNoPrices),
		errors.Is(err, pricefeed.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrNotFound),
		errors.Is(err, selection.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pricefeed.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, pricefeed.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, app.ErrPriceFeedDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, app.ErrCatalogEmpty),
		errors.Is(err, repository.ErrBadData):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

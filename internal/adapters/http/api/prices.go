package api

import (
	"net/http"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/pkg/logger"
)

type pricesResponse struct {
	Status string            `json:"status"`
	Query  string            `json:"query"`
	Count  int               `json:"count"`
	Offers []pricefeed.Offer `json:"offers"`
}

// PricesHandler fetches live shopping offers for a part name.
//
// GET /prices?part=<name>
func (s *Server) PricesHandler(w http.ResponseWriter, r *http.Request) {
	part := r.URL.Query().Get("part")

	result, err := s.deps.Offers(r.Context(), part)
	if err != nil {
		s.logger.Debug(r.Context(), "price fetch failed",
			logger.String("part", part),
			logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, pricesResponse{
		Status: "success",
		Query:  result.Query,
		Count:  result.Count,
		Offers: result.Offers,
	})
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

type selectRequest struct {
	Category      string                   `json:"category"`
	BenchmarkType string                   `json:"benchmark_type"`
	MinPrice      *float64                 `json:"min_price"`
	MaxPrice      *float64                 `json:"max_price"`
	Prices        []types.PriceObservation `json:"prices"`
}

type selectResponse struct {
	Status string `json:"status"`
	types.Selection
}

// SelectHandler picks the best ranked part whose observed price falls
// inside the requested window.
//
// POST /select with {"category": ..., "min_price": ..., "max_price": ..., "prices": [...]}
func (s *Server) SelectHandler(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sel, err := s.deps.SelectBest(r.Context(), req.Category, req.BenchmarkType, req.MinPrice, req.MaxPrice, req.Prices)
	if err != nil {
		s.logger.Debug(r.Context(), "select failed",
			logger.String("category", req.Category),
			logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, selectResponse{Status: "success", Selection: sel})
}

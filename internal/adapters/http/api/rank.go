package api

import (
	"encoding/json"
	"net/http"

	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

type rankRequest struct {
	Parts         []types.PartPrice `json:"parts"`
	BenchmarkType string            `json:"benchmark_type"`
}

type rankResponse struct {
	Status string `json:"status"`
	types.RankResult
}

// RankHandler scores a list of priced parts by benchmark value.
//
// POST /rank with {"parts": [{"part": ..., "price": ...}], "benchmark_type": ...}
func (s *Server) RankHandler(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.deps.Rank(r.Context(), req.Parts, req.BenchmarkType)
	if err != nil {
		s.logger.Debug(r.Context(), "rank failed", logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, rankResponse{Status: "success", RankResult: result})
}

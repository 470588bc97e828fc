package api

import (
	"encoding/json"
	"net/http"

	"github.com/partstack/benchrank/pkg/logger"
)

type refreshRequest struct {
	Parts []string `json:"parts"`
}

type refreshResponse struct {
	Status   string `json:"status"`
	Accepted int    `json:"accepted"`
}

// RefreshHandler enqueues background price refreshes for a list of parts.
//
// POST /refresh with {"parts": ["...", ...]}
func (s *Server) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accepted, err := s.deps.RefreshPrices(r.Context(), req.Parts)
	if err != nil {
		s.logger.Debug(r.Context(), "refresh failed", logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, refreshResponse{Status: "success", Accepted: accepted})
}

package api

import (
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports liveness.
//
// GET /healthz
func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

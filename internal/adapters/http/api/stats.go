package api

import (
	"net/http"
)

// StatsHandler returns service counters for debugging and dashboards.
//
// GET /stats
func (s *Server) StatsHandler(w http.ResponseWriter, _ *http.Request) {
	if s.stats == nil {
		s.writeError(w, http.StatusNotFound, "stats not available")
		return
	}
	s.writeJSON(w, http.StatusOK, s.stats.GetStats())
}

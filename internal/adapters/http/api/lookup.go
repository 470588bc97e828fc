package api

import (
	"net/http"

	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

type lookupResponse struct {
	Status string `json:"status"`
	types.BenchmarkInfo
}

// LookupHandler resolves one part name against the benchmark catalogs.
//
// GET /lookup?part=<name>&category=<cpu|gpu>&type=<gaming|software>
func (s *Server) LookupHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	part := q.Get("part")
	category := q.Get("category")
	benchType := q.Get("type")

	info, err := s.deps.Lookup(r.Context(), part, category, benchType)
	if err != nil {
		s.logger.Debug(r.Context(), "lookup failed",
			logger.String("part", part),
			logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, lookupResponse{Status: "success", BenchmarkInfo: info})
}

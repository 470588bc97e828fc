package api

import (
	"net/http"
	"strconv"

	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

type topResponse struct {
	Status string `json:"status"`
	types.TopResult
}

// TopHandler returns the highest ranked parts in a catalog.
//
// GET /top?category=<cpu|gpu>&type=<gaming|software>&limit=<n>
func (s *Server) TopHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	benchType := q.Get("type")

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	result, err := s.deps.Top(r.Context(), category, benchType, limit)
	if err != nil {
		s.logger.Debug(r.Context(), "top failed",
			logger.String("category", category),
			logger.Error(err))
		s.writeServiceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, topResponse{Status: "success", TopResult: result})
}

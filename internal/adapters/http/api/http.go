// Package api exposes the benchmark catalog over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

// Dependencies is the application surface the HTTP handlers call into.
type Dependencies interface {
	Lookup(ctx context.Context, part, category, benchType string) (types.BenchmarkInfo, error)
	Rank(ctx context.Context, parts []types.PartPrice, benchType string) (types.RankResult, error)
	Top(ctx context.Context, category, benchType string, limit int) (types.TopResult, error)
	SelectBest(ctx context.Context, category, benchType string, minPrice, maxPrice *float64, prices []types.PriceObservation) (types.Selection, error)
	Offers(ctx context.Context, query string) (pricefeed.Result, error)
	RefreshPrices(ctx context.Context, parts []string) (int, error)
}

// StatsProvider reports service counters for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// Server wires the handlers to an application service.
type Server struct {
	deps   Dependencies
	stats  StatsProvider
	logger logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used by the handlers.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithStats sets the stats provider behind GET /stats.
func WithStats(sp StatsProvider) Option {
	return func(s *Server) {
		s.stats = sp
	}
}

// NewServer creates an HTTP server around the given application service.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:   deps,
		logger: logger.Named("api"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all routes to the mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.handle(http.MethodGet, s.HealthHandler))
	mux.HandleFunc("/stats", s.handle(http.MethodGet, s.StatsHandler))
	mux.HandleFunc("/lookup", s.handle(http.MethodGet, s.LookupHandler))
	mux.HandleFunc("/rank", s.handle(http.MethodPost, s.RankHandler))
	mux.HandleFunc("/top", s.handle(http.MethodGet, s.TopHandler))
	mux.HandleFunc("/select", s.handle(http.MethodPost, s.SelectHandler))
	mux.HandleFunc("/prices", s.handle(http.MethodGet, s.PricesHandler))
	mux.HandleFunc("/refresh", s.handle(http.MethodPost, s.RefreshHandler))
	mux.Handle("/metrics", MetricsHandler())
}

func (s *Server) handle(method string, h http.HandlerFunc) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}))
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "failed to encode response", logger.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Status: "error", Message: msg})
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	s.writeError(w, statusFor(err), err.Error())
}

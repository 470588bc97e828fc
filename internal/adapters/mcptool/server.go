// Package mcptool exposes the benchmark catalog as MCP tools over stdio,
// so agent runtimes can call lookups and rankings directly.
package mcptool

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

const serverVersion = "1.0.0"

// Service is the application surface the tools call into.
type Service interface {
	Lookup(ctx context.Context, part, category, benchType string) (types.BenchmarkInfo, error)
	Rank(ctx context.Context, parts []types.PartPrice, benchType string) (types.RankResult, error)
	Top(ctx context.Context, category, benchType string, limit int) (types.TopResult, error)
	SelectBest(ctx context.Context, category, benchType string, minPrice, maxPrice *float64, prices []types.PriceObservation) (types.Selection, error)
	Offers(ctx context.Context, query string) (pricefeed.Result, error)
}

// Server hosts the MCP tool set.
type Server struct {
	svc    Service
	mcp    *server.MCPServer
	logger logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used by the tool handlers.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer builds the MCP server and registers all tools.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: logger.Named("mcptool"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		"benchrank",
		serverVersion,
		server.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(lookupTool(), s.handleLookup)
	s.mcp.AddTool(computeBalanceTool(), s.handleComputeBalance)
	s.mcp.AddTool(topPerformersTool(), s.handleTopPerformers)
	s.mcp.AddTool(selectBestTool(), s.handleSelectBest)
	s.mcp.AddTool(fetchPricesTool(), s.handleFetchPrices)
}

// envelope mirrors the JSON shape of the HTTP responses so both surfaces
// report results identically.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) resultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) resultError(err error) (*mcp.CallToolResult, error) {
	data, merr := json.Marshal(errorEnvelope{Status: "error", Message: err.Error()})
	if merr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

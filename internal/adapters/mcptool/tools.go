package mcptool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

func pricedPartsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"part":  map[string]any{"type": "string"},
			"price": map[string]any{"type": "number"},
		},
		"required": []string{"part", "price"},
	}
}

// --- lookup_benchmark ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup_benchmark",
		mcp.WithDescription("Look up benchmark score, relative performance and rank for a CPU or GPU by name."),
		mcp.WithString("part",
			mcp.Required(),
			mcp.Description("Part name, e.g. \"Ryzen 7 7800X3D\" or \"RTX 4070\""),
		),
		mcp.WithString("category",
			mcp.Description("\"cpu\" or \"gpu\"; detected from the part name when omitted"),
		),
		mcp.WithString("benchmark_type",
			mcp.Description("\"gaming\" or \"software\"; only meaningful for CPUs"),
		),
	)
}

type lookupResult struct {
	Status string `json:"status"`
	types.BenchmarkInfo
}

func (s *Server) handleLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	part, err := req.RequireString("part")
	if err != nil {
		return s.resultError(err)
	}
	category := req.GetString("category", "")
	benchType := req.GetString("benchmark_type", "")

	info, err := s.svc.Lookup(ctx, part, category, benchType)
	if err != nil {
		s.logger.Debug(ctx, "lookup failed", logger.String("part", part), logger.Error(err))
		return s.resultError(err)
	}
	return s.resultJSON(lookupResult{Status: "success", BenchmarkInfo: info})
}

// --- compute_balance ---

func computeBalanceTool() mcp.Tool {
	return mcp.NewTool("compute_balance",
		mcp.WithDescription("Score a list of priced parts by benchmark rank per dollar and sort them best-first."),
		mcp.WithArray("parts",
			mcp.Required(),
			mcp.Description("Parts with their prices"),
			mcp.Items(pricedPartsSchema()),
		),
		mcp.WithString("benchmark_type",
			mcp.Description("\"gaming\" or \"software\"; only meaningful for CPUs"),
		),
	)
}

type computeBalanceArgs struct {
	Parts         []types.PartPrice `json:"parts"`
	BenchmarkType string            `json:"benchmark_type"`
}

type computeBalanceResult struct {
	Status string `json:"status"`
	types.RankResult
}

func (s *Server) handleComputeBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args computeBalanceArgs
	if err := req.BindArguments(&args); err != nil {
		return s.resultError(err)
	}

	result, err := s.svc.Rank(ctx, args.Parts, args.BenchmarkType)
	if err != nil {
		s.logger.Debug(ctx, "rank failed", logger.Error(err))
		return s.resultError(err)
	}
	return s.resultJSON(computeBalanceResult{Status: "success", RankResult: result})
}

// --- get_top_performers ---

func topPerformersTool() mcp.Tool {
	return mcp.NewTool("get_top_performers",
		mcp.WithDescription("List the highest ranked parts in a benchmark catalog."),
		mcp.WithString("category",
			mcp.Description("\"cpu\" or \"gpu\"; defaults to cpu"),
		),
		mcp.WithString("benchmark_type",
			mcp.Description("\"gaming\" or \"software\"; only meaningful for CPUs"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return"),
		),
	)
}

type topPerformersResult struct {
	Status string `json:"status"`
	types.TopResult
}

func (s *Server) handleTopPerformers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	benchType := req.GetString("benchmark_type", "")
	limit := req.GetInt("limit", 0)

	result, err := s.svc.Top(ctx, category, benchType, limit)
	if err != nil {
		s.logger.Debug(ctx, "top failed", logger.String("category", category), logger.Error(err))
		return s.resultError(err)
	}
	return s.resultJSON(topPerformersResult{Status: "success", TopResult: result})
}

// --- select_best_part ---

func selectBestTool() mcp.Tool {
	return mcp.NewTool("select_best_part",
		mcp.WithDescription("Pick the best ranked part whose observed price falls inside a price window."),
		mcp.WithArray("prices",
			mcp.Required(),
			mcp.Description("Observed prices per part"),
			mcp.Items(pricedPartsSchema()),
		),
		mcp.WithString("category",
			mcp.Description("\"cpu\" or \"gpu\"; defaults to cpu"),
		),
		mcp.WithString("benchmark_type",
			mcp.Description("\"gaming\" or \"software\"; only meaningful for CPUs"),
		),
		mcp.WithNumber("min_price",
			mcp.Description("Lower bound of the price window"),
		),
		mcp.WithNumber("max_price",
			mcp.Description("Upper bound of the price window"),
		),
	)
}

type selectBestArgs struct {
	Category      string                   `json:"category"`
	BenchmarkType string                   `json:"benchmark_type"`
	MinPrice      *float64                 `json:"min_price"`
	MaxPrice      *float64                 `json:"max_price"`
	Prices        []types.PriceObservation `json:"prices"`
}

type selectBestResult struct {
	Status string `json:"status"`
	types.Selection
}

func (s *Server) handleSelectBest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args selectBestArgs
	if err := req.BindArguments(&args); err != nil {
		return s.resultError(err)
	}

	sel, err := s.svc.SelectBest(ctx, args.Category, args.BenchmarkType, args.MinPrice, args.MaxPrice, args.Prices)
	if err != nil {
		s.logger.Debug(ctx, "select failed", logger.String("category", args.Category), logger.Error(err))
		return s.resultError(err)
	}
	return s.resultJSON(selectBestResult{Status: "success", Selection: sel})
}

// --- fetch_part_prices ---

func fetchPricesTool() mcp.Tool {
	return mcp.NewTool("fetch_part_prices",
		mcp.WithDescription("Fetch live shopping offers for a part, cheapest first."),
		mcp.WithString("part",
			mcp.Required(),
			mcp.Description("Part name to search offers for"),
		),
	)
}

type fetchPricesResult struct {
	Status string            `json:"status"`
	Query  string            `json:"query"`
	Count  int               `json:"count"`
	Offers []pricefeed.Offer `json:"offers"`
}

func (s *Server) handleFetchPrices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	part, err := req.RequireString("part")
	if err != nil {
		return s.resultError(err)
	}

	result, err := s.svc.Offers(ctx, part)
	if err != nil {
		s.logger.Debug(ctx, "price fetch failed", logger.String("part", part), logger.Error(err))
		return s.resultError(err)
	}
	return s.resultJSON(fetchPricesResult{
		Status: "success",
		Query:  result.Query,
		Count:  result.Count,
		Offers: result.Offers,
	})
}

// Package ranking computes price/performance balance scores for batches of
// (part, price) pairs and assigns dense output ranks.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/partstack/benchrank/internal/domain/category"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
	"github.com/partstack/benchrank/pkg/metrics"
)

// Resolver resolves a free-text part name to its benchmark info. Implemented
// by the application service on top of the catalog store.
type Resolver interface {
	Resolve(ctx context.Context, part string, benchType string) (types.BenchmarkInfo, error)
}

// Engine computes balance scores. Stateless apart from its collaborators.
type Engine struct {
	resolver Resolver
	logger   logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates a ranking engine backed by the given resolver.
func NewEngine(resolver Resolver, opts ...Option) *Engine {
	e := &Engine{resolver: resolver}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeBalance evaluates every input entry and ranks the scorable ones.
//
// Per entry: a missing or non-positive price, a failed name resolution, or a
// missing benchmark rank tags the entry with an error instead of failing the
// batch. Scored entries get balance = rank / price and are stably sorted by
// balance descending, then assigned dense output ranks 1..N. Unscored
// entries follow in input order with no rank.
//
// An empty input is the only top-level error.
func (e *Engine) ComputeBalance(ctx context.Context, parts []types.PartPrice, benchType string) (types.RankResult, error) {
	if len(parts) == 0 {
		return types.RankResult{}, ErrEmptyInput
	}
	if e.logger == nil {
		e.logger = logger.Get().Named("ranking")
	}
	benchType = category.NormalizeType(benchType)

	valid := make([]types.RankedEntry, 0, len(parts))
	invalid := make([]types.RankedEntry, 0)

	for _, pp := range parts {
		if pp.Part == "" {
			e.logger.Warn(ctx, "skipping entry without part name")
			continue
		}

		if pp.Price == nil || *pp.Price <= 0 {
			entry := types.RankedEntry{Part: pp.Part, Error: priceError(pp.Price)}
			if pp.Price != nil {
				entry.Price = *pp.Price
			}
			e.logger.Warn(ctx, "invalid price",
				logger.String("part", pp.Part),
			)
			invalid = append(invalid, entry)
			continue
		}
		price := *pp.Price

		info, err := e.resolver.Resolve(ctx, pp.Part, benchType)
		if err != nil {
			e.logger.Warn(ctx, "no benchmark for part",
				logger.String("part", pp.Part),
				logger.Error(err),
			)
			invalid = append(invalid, types.RankedEntry{
				Part:     pp.Part,
				Price:    price,
				Category: string(category.Detect(pp.Part)),
				Error:    err.Error(),
			})
			continue
		}

		entry := types.RankedEntry{
			Part:           pp.Part,
			Price:          price,
			RelativeScore:  info.RelativeScore,
			Category:       info.Category,
			BenchmarkType:  benchType,
			BenchmarkTitle: info.BenchmarkTitle,
			BenchmarkRank:  info.BenchmarkRank,
		}
		if info.Score > 0 {
			score := info.Score
			entry.Benchmark = &score
		}

		if info.BenchmarkRank <= 0 {
			entry.Error = fmt.Sprintf("invalid benchmark rank: %d", info.BenchmarkRank)
			invalid = append(invalid, entry)
			continue
		}

		balance := float64(info.BenchmarkRank) / price
		entry.BalanceScore = &balance
		valid = append(valid, entry)
	}

	// Literal upstream ordering: balance score descending, stable so equal
	// scores keep input order.
	sort.SliceStable(valid, func(i, j int) bool {
		return *valid[i].BalanceScore > *valid[j].BalanceScore
	})
	for i := range valid {
		valid[i].OutputRank = i + 1
	}

	metrics.RecordRankRequest(len(valid), len(invalid))
	e.logger.Info(ctx, "evaluated parts",
		logger.Int("valid", len(valid)),
		logger.Int("invalid", len(invalid)),
	)

	return types.RankResult{
		ValidCount:    len(valid),
		InvalidCount:  len(invalid),
		BenchmarkType: benchType,
		Evaluated:     append(valid, invalid...),
	}, nil
}

// priceError formats the per-entry message for a rejected price.
func priceError(price *float64) string {
	if price == nil {
		return "invalid price: missing"
	}
	return fmt.Sprintf("invalid price: %g", *price)
}

// Package app provides the core business service that implements
// the dependencies required by the HTTP and MCP adapters.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	"github.com/partstack/benchrank/internal/adapters/pricewatch"
	"github.com/partstack/benchrank/internal/adapters/repository"
	"github.com/partstack/benchrank/internal/domain/category"
	"github.com/partstack/benchrank/internal/domain/model"
	"github.com/partstack/benchrank/internal/domain/ranking"
	"github.com/partstack/benchrank/internal/domain/selection"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
	"github.com/partstack/benchrank/pkg/metrics"
)

const defaultTopLimit = 10

// Service implements the part lookup, ranking and selection operations.
type Service struct {
	mu sync.RWMutex

	// Core components
	store       repository.Store
	rankEngine  *ranking.Engine
	priceClient *pricefeed.Client

	// Background price refresh
	priceBook  *pricewatch.PriceBook
	priceQueue pricewatch.Queue
	pricePool  *pricewatch.Pool

	// Configuration
	benchmarkDir string
	maxTopLimit  int
	priceWorkers int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom catalog store. Used by tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithBenchmarkDir sets the primary hint for the benchmark directory.
func WithBenchmarkDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.benchmarkDir = dir
		}
	}
}

// WithMaxTopLimit caps top-performer listings.
func WithMaxTopLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxTopLimit = limit
		}
	}
}

// WithPriceClient wires the shopping-offer client.
func WithPriceClient(client *pricefeed.Client) Option {
	return func(s *Service) {
		s.priceClient = client
	}
}

// WithPriceWorkers sets the background price refresh pool size.
func WithPriceWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.priceWorkers = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		benchmarkDir: "benchmarks",
		maxTopLimit:  100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components. The catalog itself loads
// lazily on the first operation that needs it.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewCatalogStore()
	}
	s.rankEngine = ranking.NewEngine(s, ranking.WithLogger(s.logger.Named("ranking")))

	if s.priceClient != nil && s.priceClient.Enabled() {
		s.priceBook = pricewatch.NewPriceBook()
		s.priceQueue = pricewatch.NewInMemoryQueue()
		s.pricePool = pricewatch.NewPool(s.priceWorkers, s.priceQueue, s.priceClient, s.priceBook)
		s.pricePool.Start(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "benchrank service started",
		logger.String("benchmarkDir", s.benchmarkDir),
		logger.Int("maxTopLimit", s.maxTopLimit),
	)
	return nil
}

// Stop shuts down the service. Catalog state is immutable, so there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.pricePool != nil {
		if err := s.pricePool.Shutdown(context.Background()); err != nil {
			s.logger.Warn(context.Background(), "price refresh pool shutdown", logger.Error(err))
		}
	}
	s.started = false
	s.logger.Info(context.Background(), "benchrank service stopped")
}

// MaxTopLimit exposes the configured listing cap to the adapters.
func (s *Service) MaxTopLimit() int {
	return s.maxTopLimit
}

// ensureLoaded triggers the one-time catalog load. A fatal data error from
// the first load is returned on every later call as well.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if err := s.store.Load(ctx, s.benchmarkDir); err != nil {
		return fmt.Errorf("failed to load benchmarks: %w", err)
	}
	return nil
}

// checkNotEmpty detects the silent directory-not-found load.
func (s *Service) checkNotEmpty() error {
	if !s.store.Empty() {
		return nil
	}
	tried := strings.Join(s.store.AttemptedPaths(), ", ")
	if tried == "" {
		tried = "unknown"
	}
	return fmt.Errorf("%w (tried: %s)", ErrCatalogEmpty, tried)
}

// Lookup resolves a free-text part name to its benchmark info. An empty
// category is auto-detected from the name.
func (s *Service) Lookup(ctx context.Context, part, rawCategory, benchType string) (types.BenchmarkInfo, error) {
	if strings.TrimSpace(part) == "" {
		return types.BenchmarkInfo{}, ErrMissingPart
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return types.BenchmarkInfo{}, err
	}
	if err := s.checkNotEmpty(); err != nil {
		return types.BenchmarkInfo{}, err
	}

	cat, ok := category.Parse(rawCategory, part)
	if !ok {
		return types.BenchmarkInfo{}, fmt.Errorf("%w: %s", ErrUnknownCategory, rawCategory)
	}
	benchType = effectiveType(cat, benchType)
	kind := category.CatalogKind(cat, benchType)

	rec, found := s.store.Lookup(ctx, kind, part)
	if !found {
		s.logger.Warn(ctx, "no benchmark found",
			logger.String("part", part),
			logger.String("catalog", string(kind)),
		)
		return types.BenchmarkInfo{}, fmt.Errorf("%w: no benchmark found for %s (%s, %s)", ErrNotFound, part, cat, benchType)
	}
	if rec.Score == nil {
		return types.BenchmarkInfo{}, fmt.Errorf("%w: benchmark found but no score for %s", ErrNotFound, part)
	}

	return types.BenchmarkInfo{
		Part:           rec.Name,
		Score:          *rec.Score,
		RelativeScore:  rec.RelativeScore,
		BenchmarkTitle: s.store.Catalog(kind).Title,
		BenchmarkRank:  rec.Rank,
		Category:       string(cat),
		BenchmarkType:  benchType,
		Stale:          rec.Stale,
	}, nil
}

// Resolve implements ranking.Resolver: a lookup with auto-detected category.
func (s *Service) Resolve(ctx context.Context, part, benchType string) (types.BenchmarkInfo, error) {
	return s.Lookup(ctx, part, "", benchType)
}

// Rank computes balance scores for a batch of (part, price) pairs.
func (s *Service) Rank(ctx context.Context, parts []types.PartPrice, benchType string) (types.RankResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return types.RankResult{}, err
	}
	return s.rankEngine.ComputeBalance(ctx, parts, benchType)
}

// Top lists the catalog's ranked parts in the same rank-descending order
// the selection scan uses, truncated to limit.
func (s *Service) Top(ctx context.Context, rawCategory, benchType string, limit int) (types.TopResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return types.TopResult{}, err
	}
	if err := s.checkNotEmpty(); err != nil {
		return types.TopResult{}, err
	}
	cat, ok := category.Parse(rawCategory, "")
	if !ok {
		return types.TopResult{}, fmt.Errorf("%w: %s", ErrUnknownCategory, rawCategory)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > s.maxTopLimit {
		limit = s.maxTopLimit
	}
	benchType = effectiveType(cat, benchType)
	kind := category.CatalogKind(cat, benchType)
	catalog := s.store.Catalog(kind)

	ranked := selection.RankedDescending(catalog)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	top := make([]types.TopEntry, len(ranked))
	for i, rec := range ranked {
		top[i] = types.TopEntry{
			Name:          rec.Name,
			Score:         rec.Score,
			RelativeScore: rec.RelativeScore,
			Rank:          rec.Rank,
		}
	}

	return types.TopResult{
		Category:       string(cat),
		BenchmarkType:  benchType,
		BenchmarkTitle: catalog.Title,
		TopPerformers:  top,
	}, nil
}

// SelectBest picks the first ranked part, in rank-descending scan order,
// whose observed price falls within the optional bounds.
func (s *Service) SelectBest(ctx context.Context, rawCategory, benchType string, minPrice, maxPrice *float64, prices []types.PriceObservation) (types.Selection, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return types.Selection{}, err
	}
	if err := s.checkNotEmpty(); err != nil {
		return types.Selection{}, err
	}
	cat, ok := category.Parse(rawCategory, "")
	if !ok {
		return types.Selection{}, fmt.Errorf("%w: %s", ErrUnknownCategory, rawCategory)
	}
	benchType = effectiveType(cat, benchType)
	kind := category.CatalogKind(cat, benchType)
	catalog := s.store.Catalog(kind)

	// Requests without observations fall back to the background price book.
	if len(prices) == 0 && s.priceBook != nil {
		prices = s.priceBook.Snapshot()
	}

	rec, price, err := selection.BestInRange(catalog, minPrice, maxPrice, prices)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrNoPrices):
			metrics.RecordSelectRequest("no_prices")
		case errors.Is(err, selection.ErrNotFound):
			metrics.RecordSelectRequest("not_found")
		}
		return types.Selection{}, err
	}
	metrics.RecordSelectRequest("selected")

	s.logger.Info(ctx, "selected part",
		logger.String("part", rec.Name),
		logger.Float64("price", price),
		logger.Int("rank", rec.Rank),
	)
	return types.Selection{
		Part:           rec.Name,
		Price:          price,
		BenchmarkTitle: catalog.Title,
		BenchmarkRank:  rec.Rank,
		Category:       string(cat),
		BenchmarkType:  benchType,
	}, nil
}

// Offers proxies an offer search to the price feed collaborator. The
// cheapest priced offer also lands in the price book.
func (s *Service) Offers(ctx context.Context, query string) (pricefeed.Result, error) {
	if s.priceClient == nil || !s.priceClient.Enabled() {
		return pricefeed.Result{}, ErrPriceFeedDisabled
	}
	result, err := s.priceClient.Offers(ctx, query)
	if err != nil {
		return pricefeed.Result{}, err
	}
	if s.priceBook != nil {
		for _, offer := range result.Offers {
			if offer.Price != nil && *offer.Price > 0 {
				s.priceBook.Record(result.Query, *offer.Price)
				break
			}
		}
	}
	return result, nil
}

// RefreshPrices enqueues background price refresh jobs for the given parts
// and reports how many were accepted. Parts without names are skipped.
func (s *Service) RefreshPrices(ctx context.Context, parts []string) (int, error) {
	if s.priceQueue == nil {
		return 0, ErrPriceFeedDisabled
	}
	accepted := 0
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if s.priceQueue.Enqueue(ctx, pricewatch.Job{Part: part}) {
			accepted++
		}
	}
	return accepted, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"benchmarkDir":     s.benchmarkDir,
		"priceFeedEnabled": s.priceClient != nil && s.priceClient.Enabled(),
	}
	if s.priceBook != nil {
		stats["priceBookParts"] = s.priceBook.Len()
		stats["priceQueueDepth"] = s.priceQueue.Len(context.Background())
	}
	if s.store != nil {
		stats["resolvedDir"] = s.store.ResolvedDir()
		stats["attemptedPaths"] = s.store.AttemptedPaths()
		for _, kind := range model.Kinds() {
			stats[string(kind)+"_records"] = s.store.Catalog(kind).Len()
		}
	}
	return stats
}

// effectiveType collapses the benchmark type for GPUs, which only have one
// benchmark set.
func effectiveType(cat category.Category, benchType string) string {
	if cat == category.GPU {
		return category.TypeGaming
	}
	return category.NormalizeType(benchType)
}

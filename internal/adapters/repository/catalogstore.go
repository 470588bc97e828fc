package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/partstack/benchrank/internal/domain/match"
	"github.com/partstack/benchrank/internal/domain/model"
	"github.com/partstack/benchrank/pkg/logger"
	"github.com/partstack/benchrank/pkg/metrics"
)

// CatalogStore implements Store. The load step runs at most once per
// process; all state is read-only afterwards, so queries need no locking.
type CatalogStore struct {
	once        sync.Once
	loadErr     error
	catalogs    map[model.Kind]*model.Catalog
	indexes     map[model.Kind]*match.Index
	attempted   []string
	resolvedDir string
	searchDepth int
	readFile    ReadFileFunc
	logger      logger.Logger
}

// NewCatalogStore creates an unloaded store with configuration options.
func NewCatalogStore(opts ...Option) *CatalogStore {
	s := &CatalogStore{
		catalogs:    make(map[model.Kind]*model.Catalog),
		indexes:     make(map[model.Kind]*match.Index),
		searchDepth: defaultSearchDepth,
		readFile:    defaultReadFile,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Every kind starts as an empty catalog so readers never see nil.
	s.catalogs[model.KindCPUGaming] = model.NewCatalog(model.KindCPUGaming, titleCPUGaming)
	s.catalogs[model.KindCPUSoftware] = model.NewCatalog(model.KindCPUSoftware, titleCPUSoftware)
	s.catalogs[model.KindGPU] = model.NewCatalog(model.KindGPU, titleGPU)
	for kind, cat := range s.catalogs {
		s.indexes[kind] = match.NewIndex(cat)
	}

	return s
}

// Load resolves the benchmark directory and parses the data files into the
// catalogs. The sync.Once guard makes concurrent first calls safe and all
// later calls no-ops that return the cached outcome.
func (s *CatalogStore) Load(ctx context.Context, dirHint string) error {
	s.once.Do(func() {
		s.loadErr = s.load(ctx, dirHint)
	})
	return s.loadErr
}

func (s *CatalogStore) load(ctx context.Context, dirHint string) error {
	if s.logger == nil {
		s.logger = logger.Get().Named("catalog")
	}
	start := time.Now()

	dir := s.resolveDir(dirHint)
	if dir == "" {
		// Silent failure: catalogs stay empty and the store counts as
		// loaded so the filesystem search never runs again. Callers
		// detect this through Empty() and AttemptedPaths().
		s.logger.Error(ctx, "benchmark directory not found",
			logger.Any("attempted", s.attempted),
		)
		return nil
	}
	s.resolvedDir = dir

	for _, name := range benchmarkFiles {
		path := filepath.Join(dir, name)
		data, err := s.readFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // missing file tolerated; that catalog stays empty
			}
			return fmt.Errorf("%w: read %s: %w", ErrBadData, path, err)
		}
		cat, err := parsers[name](data)
		if err != nil {
			return err
		}
		s.catalogs[kindForFile[name]] = cat
		s.logger.Info(ctx, "loaded benchmark catalog",
			logger.String("kind", string(cat.Kind)),
			logger.Int("records", cat.Len()),
		)
	}

	s.rebuildIndexes()

	for kind, cat := range s.catalogs {
		metrics.UpdateCatalogRecords(string(kind), cat.Len())
	}
	metrics.RecordCatalogLoadDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "benchmark catalogs loaded",
		logger.String("dir", dir),
		logger.Float64("elapsed_ms", float64(time.Since(start).Milliseconds())),
	)
	return nil
}

// rebuildIndexes replaces all derived name indexes atomically after a load.
func (s *CatalogStore) rebuildIndexes() {
	for kind, cat := range s.catalogs {
		s.indexes[kind] = match.NewIndex(cat)
	}
}

// Catalog returns the catalog for a kind. Never nil.
func (s *CatalogStore) Catalog(kind model.Kind) *model.Catalog {
	return s.catalogs[kind]
}

// Lookup resolves a free-text part name against a catalog.
func (s *CatalogStore) Lookup(ctx context.Context, kind model.Kind, query string) (model.BenchmarkRecord, bool) {
	ix, ok := s.indexes[kind]
	if !ok {
		return model.BenchmarkRecord{}, false
	}
	rec, found := ix.Lookup(query)
	metrics.RecordCatalogLookup(string(kind), found)
	return rec, found
}

// Empty reports whether every catalog is empty.
func (s *CatalogStore) Empty() bool {
	for _, cat := range s.catalogs {
		if cat.Len() > 0 {
			return false
		}
	}
	return true
}

// AttemptedPaths returns the directory candidates tried during resolution.
func (s *CatalogStore) AttemptedPaths() []string {
	return s.attempted
}

// ResolvedDir returns the directory the data was loaded from, or "".
func (s *CatalogStore) ResolvedDir() string {
	return s.resolvedDir
}

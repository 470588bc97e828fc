// Package repository loads the static benchmark files into in-memory
// catalogs and exposes read access plus fuzzy name lookup over them.
package repository

import (
	"context"

	"github.com/partstack/benchrank/internal/domain/model"
)

// Store provides read access to the loaded benchmark catalogs.
type Store interface {
	// Load resolves the benchmark directory and parses the data files.
	// It is idempotent: the first call wins, even when it fails, and
	// later calls return the cached outcome without touching the
	// filesystem again. A missing directory is not an error; the
	// catalogs simply stay empty.
	Load(ctx context.Context, dirHint string) error

	// Catalog returns the catalog for a kind. Never nil.
	Catalog(kind model.Kind) *model.Catalog

	// Lookup resolves a free-text part name against a catalog.
	Lookup(ctx context.Context, kind model.Kind, query string) (model.BenchmarkRecord, bool)

	// Empty reports whether every catalog is empty, which is how callers
	// detect a silent directory-not-found load.
	Empty() bool

	// AttemptedPaths returns every directory candidate tried during
	// resolution, for diagnostic error messages.
	AttemptedPaths() []string

	// ResolvedDir returns the directory the data was loaded from, or ""
	// when resolution failed.
	ResolvedDir() string
}

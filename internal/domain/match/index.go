package match

import (
	"strings"

	"github.com/partstack/benchrank/internal/domain/model"
)

// Index holds the derived name indexes for a single catalog: one keyed by
// the normalized name and one keyed by its compact (whitespace-free) form.
// An Index is rebuilt whenever its catalog is reloaded and is read-only
// afterwards.
type Index struct {
	cat        *model.Catalog
	normalized map[string]string
	compact    map[string]string
}

// NewIndex builds the derived indexes for the given catalog.
func NewIndex(cat *model.Catalog) *Index {
	ix := &Index{
		cat:        cat,
		normalized: make(map[string]string, cat.Len()),
		compact:    make(map[string]string, cat.Len()),
	}
	for _, name := range cat.Names {
		ix.normalized[Normalize(name)] = name
		ix.compact[Compact(name)] = name
	}
	return ix
}

// Lookup resolves a free-text query against the catalog. Strategies are
// tried in order, first hit wins:
//  1. exact match on the normalized-name index
//  2. exact match on the compact-name index
//  3. ordered scan over catalog (file) order, per record: token subset
//     match in either direction, falling back to the compact query as a
//     substring of the compact record name
//
// The scan checks both conditions on each record before moving on, so the
// earliest record satisfying either one wins, even when a later record
// would satisfy the stronger token condition.
func (ix *Index) Lookup(query string) (model.BenchmarkRecord, bool) {
	normalizedQuery := Normalize(query)
	compactQuery := Compact(query)

	if name, ok := ix.normalized[normalizedQuery]; ok {
		return ix.cat.Get(name)
	}
	if name, ok := ix.compact[compactQuery]; ok {
		return ix.cat.Get(name)
	}

	for _, name := range ix.cat.Names {
		if tokensMatch(normalizedQuery, Normalize(name)) {
			return ix.cat.Get(name)
		}
		if compactQuery != "" && strings.Contains(Compact(name), compactQuery) {
			return ix.cat.Get(name)
		}
	}

	return model.BenchmarkRecord{}, false
}

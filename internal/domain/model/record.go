// Package model contains the benchmark catalog domain types.
package model

// Kind identifies one of the three benchmark catalogs.
type Kind string

// Catalog kinds.
const (
	KindCPUGaming   Kind = "cpu_gaming"
	KindCPUSoftware Kind = "cpu_software"
	KindGPU         Kind = "gpu"
)

// Kinds lists all catalog kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{KindCPUGaming, KindCPUSoftware, KindGPU}
}

// BenchmarkRecord is one named hardware part within a catalog.
// Rank is the catalog's quality ordering where 1 is best; zero means the
// source did not assign a rank. Score semantics differ per catalog (gaming
// rating, software rating, or raw GPU benchmark score).
type BenchmarkRecord struct {
	Name          string
	Score         *float64
	RelativeScore *float64
	Rank          int
	Stale         bool
}

// HasRank reports whether the record carries a usable benchmark rank.
func (r BenchmarkRecord) HasRank() bool {
	return r.Rank > 0
}

// Catalog is a named collection of benchmark records for one source.
// Names preserves the order records appeared in the source file so that
// scans over the catalog are deterministic.
type Catalog struct {
	Kind    Kind
	Title   string
	Names   []string
	Records map[string]BenchmarkRecord
}

// NewCatalog creates an empty catalog for the given kind and title.
func NewCatalog(kind Kind, title string) *Catalog {
	return &Catalog{
		Kind:    kind,
		Title:   title,
		Records: make(map[string]BenchmarkRecord),
	}
}

// Add inserts a record, keeping the first occurrence of a duplicate name.
func (c *Catalog) Add(rec BenchmarkRecord) {
	if rec.Name == "" {
		return
	}
	if _, exists := c.Records[rec.Name]; exists {
		return
	}
	c.Names = append(c.Names, rec.Name)
	c.Records[rec.Name] = rec
}

// Get returns the record stored under the exact name.
func (c *Catalog) Get(name string) (BenchmarkRecord, bool) {
	rec, ok := c.Records[name]
	return rec, ok
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.Records)
}

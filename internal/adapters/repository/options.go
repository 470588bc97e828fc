package repository

import "os"

// ReadFileFunc reads a file from disk. Injectable so tests can count reads
// and verify the load happens exactly once.
type ReadFileFunc func(path string) ([]byte, error)

// Option applies a configuration option to the CatalogStore.
type Option func(*CatalogStore)

// WithReadFile overrides the file reader used during load.
func WithReadFile(fn ReadFileFunc) Option {
	return func(s *CatalogStore) {
		if fn != nil {
			s.readFile = fn
		}
	}
}

// WithSearchDepth bounds the recursive directory search.
func WithSearchDepth(depth int) Option {
	return func(s *CatalogStore) {
		if depth > 0 {
			s.searchDepth = depth
		}
	}
}

// defaultReadFile is the production file reader.
func defaultReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

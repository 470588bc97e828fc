package repository

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const defaultSearchDepth = 4

// resolveDir searches candidate locations for the benchmark directory in
// strict priority order: the hint itself, fixed fallback paths, then a
// depth-bounded recursive search under the working directory and an
// ancestor of the running binary. Every candidate tried is recorded on the
// store for diagnostics. Returns "" when nothing qualifies.
func (s *CatalogStore) resolveDir(dirHint string) string {
	candidates := make([]string, 0, 4)
	if dirHint != "" {
		candidates = append(candidates, dirHint)
	}
	candidates = append(candidates,
		"benchmarks",
		filepath.Join("data", "benchmarks"),
	)
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), "..", "benchmarks"))
	}

	for _, candidate := range candidates {
		s.attempted = append(s.attempted, candidate)
		if hasBenchmarkFiles(candidate) {
			return candidate
		}
	}

	roots := make([]string, 0, 2)
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(filepath.Dir(exe)))
	}
	for _, root := range roots {
		if found := s.searchBenchmarkDir(root); found != "" {
			return found
		}
	}

	return ""
}

// hasBenchmarkFiles reports whether dir contains at least one expected file.
func hasBenchmarkFiles(dir string) bool {
	for _, name := range benchmarkFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// searchBenchmarkDir walks root up to the configured depth and returns the
// first directory containing a benchmark file. The walk is side-effect-free
// apart from recording the hit in the attempt list.
func (s *CatalogStore) searchBenchmarkDir(root string) string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return ""
	}

	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep going
		}
		if found != "" {
			return filepath.SkipAll
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return filepath.SkipDir
		}
		if rel != "." && pathDepth(rel) > s.searchDepth {
			return filepath.SkipDir
		}
		if hasBenchmarkFiles(path) {
			found = path
			s.attempted = append(s.attempted, path)
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// pathDepth counts the path segments of a relative path.
func pathDepth(rel string) int {
	return len(strings.Split(rel, string(filepath.Separator)))
}

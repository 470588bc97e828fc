// Package category classifies part names as CPU or GPU using simple keyword
// heuristics, and maps a (category, benchmark type) pair to its catalog.
package category

import (
	"strings"

	"github.com/partstack/benchrank/internal/domain/model"
)

// Category of a hardware part.
type Category string

// Supported categories.
const (
	CPU Category = "cpu"
	GPU Category = "gpu"
)

// Benchmark types for CPU catalogs. GPUs have a single benchmark set.
const (
	TypeGaming   = "gaming"
	TypeSoftware = "software"
)

var (
	cpuKeywords = []string{"ryzen", "core i", "xeon", "threadripper", "athlon"}
	gpuKeywords = []string{"rtx", "gtx", "radeon", "geforce", "arc", "rx"}
)

// Detect guesses the category of a part name. CPU keywords are checked
// first; unknown names default to CPU.
func Detect(part string) Category {
	lower := strings.ToLower(part)
	for _, kw := range cpuKeywords {
		if strings.Contains(lower, kw) {
			return CPU
		}
	}
	for _, kw := range gpuKeywords {
		if strings.Contains(lower, kw) {
			return GPU
		}
	}
	return CPU
}

// Parse validates an explicit category string, falling back to Detect on an
// empty value. An unknown non-empty value returns false.
func Parse(raw, part string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return Detect(part), true
	case string(CPU):
		return CPU, true
	case string(GPU):
		return GPU, true
	default:
		return "", false
	}
}

// NormalizeType maps a benchmark type string to gaming or software.
// Anything other than "software" means gaming, matching the upstream data.
func NormalizeType(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), TypeSoftware) {
		return TypeSoftware
	}
	return TypeGaming
}

// CatalogKind maps a category and benchmark type to the catalog holding its
// records. The software benchmark only exists for CPUs.
func CatalogKind(cat Category, benchType string) model.Kind {
	if cat == GPU {
		return model.KindGPU
	}
	if NormalizeType(benchType) == TypeSoftware {
		return model.KindCPUSoftware
	}
	return model.KindCPUGaming
}

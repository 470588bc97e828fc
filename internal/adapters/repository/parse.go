package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/partstack/benchrank/internal/domain/model"
)

// Benchmark data filenames. Each has its own top-level shape and parser.
const (
	fileCPUGaming   = "cpu1.json"
	fileCPUSoftware = "cpu2.json"
	fileGPU         = "gpu.json"
)

// Default catalog titles used when the source file omits one.
const (
	titleCPUGaming   = "Processor Gaming Benchmark"
	titleCPUSoftware = "Processor Software Benchmark"
	titleGPU         = "GPU Benchmark Rankings"
)

// benchmarkFiles lists the expected filenames; a directory qualifies as the
// benchmark directory when it contains at least one of them.
var benchmarkFiles = []string{fileCPUGaming, fileCPUSoftware, fileGPU}

// parseFunc turns one raw data file into a catalog.
type parseFunc func(data []byte) (*model.Catalog, error)

// parsers statically dispatches each filename to its shape parser.
var parsers = map[string]parseFunc{
	fileCPUGaming:   parseCPUGaming,
	fileCPUSoftware: parseCPUSoftware,
	fileGPU:         parseGPU,
}

// kindForFile maps filenames to catalog kinds.
var kindForFile = map[string]model.Kind{
	fileCPUGaming:   model.KindCPUGaming,
	fileCPUSoftware: model.KindCPUSoftware,
	fileGPU:         model.KindGPU,
}

// cpuGamingFile is the top-level shape of cpu1.json.
type cpuGamingFile struct {
	BenchmarkTitle string `json:"benchmark_title"`
	CPUs           []struct {
		Name                string   `json:"name"`
		Rating              *float64 `json:"rating"`
		RelativePerformance *float64 `json:"relative_performance_percent"`
		Rank                *float64 `json:"rank"`
		Outdated            bool     `json:"outdated"`
	} `json:"cpus"`
}

func parseCPUGaming(data []byte) (*model.Catalog, error) {
	var f cpuGamingFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadData, fileCPUGaming, err)
	}
	title := f.BenchmarkTitle
	if title == "" {
		title = titleCPUGaming
	}
	cat := model.NewCatalog(model.KindCPUGaming, title)
	for _, cpu := range f.CPUs {
		name := strings.TrimSpace(cpu.Name)
		if name == "" {
			continue
		}
		cat.Add(model.BenchmarkRecord{
			Name:          name,
			Score:         cpu.Rating,
			RelativeScore: cpu.RelativePerformance,
			Rank:          rankValue(cpu.Rank),
			Stale:         cpu.Outdated,
		})
	}
	return cat, nil
}

// cpuSoftwareFile is the top-level shape of cpu2.json.
type cpuSoftwareFile struct {
	BenchmarkName string `json:"benchmark_name"`
	Processors    []struct {
		Name       string   `json:"name"`
		Rating     *float64 `json:"rating"`
		Percentage *float64 `json:"percentage"`
		Rank       *float64 `json:"rank"`
		Outdated   bool     `json:"outdated"`
	} `json:"processors"`
}

func parseCPUSoftware(data []byte) (*model.Catalog, error) {
	var f cpuSoftwareFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadData, fileCPUSoftware, err)
	}
	title := f.BenchmarkName
	if title == "" {
		title = titleCPUSoftware
	}
	cat := model.NewCatalog(model.KindCPUSoftware, title)
	for _, cpu := range f.Processors {
		name := strings.TrimSpace(cpu.Name)
		if name == "" {
			continue
		}
		cat.Add(model.BenchmarkRecord{
			Name:          name,
			Score:         cpu.Rating,
			RelativeScore: cpu.Percentage,
			Rank:          rankValue(cpu.Rank),
			Stale:         cpu.Outdated,
		})
	}
	return cat, nil
}

// gpuFile is the top-level shape of gpu.json.
type gpuFile struct {
	BenchmarkTitle string `json:"benchmark_title"`
	Rankings       []struct {
		Name                string   `json:"name"`
		BenchmarkScore      *float64 `json:"benchmark_score"`
		RelativePerformance *float64 `json:"relative_performance"`
		Rank                *float64 `json:"rank"`
		Status              string   `json:"status"`
	} `json:"GPU Benchmark Rankings"`
}

func parseGPU(data []byte) (*model.Catalog, error) {
	var f gpuFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadData, fileGPU, err)
	}
	title := f.BenchmarkTitle
	if title == "" {
		title = titleGPU
	}
	cat := model.NewCatalog(model.KindGPU, title)
	for _, gpu := range f.Rankings {
		name := strings.TrimSpace(gpu.Name)
		if name == "" {
			continue
		}
		cat.Add(model.BenchmarkRecord{
			Name:          name,
			Score:         gpu.BenchmarkScore,
			RelativeScore: gpu.RelativePerformance,
			Rank:          rankValue(gpu.Rank),
			Stale:         gpu.Status != "" && gpu.Status != "current",
		})
	}
	return cat, nil
}

// rankValue flattens an optional rank; zero means absent. Ranks are decoded
// as floats so a fractional value in one record does not abort the whole
// file, but only whole numbers count as real ranks.
func rankValue(rank *float64) int {
	if rank == nil {
		return 0
	}
	n := int(*rank)
	if float64(n) != *rank {
		return 0
	}
	return n
}

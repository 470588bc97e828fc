// Package types contains common types used across the application
package types

// PartPrice is one (part, price) input to a ranking request. Price is a
// pointer so missing and non-numeric inputs are distinguishable from zero.
type PartPrice struct {
	Part  string   `json:"part"`
	Price *float64 `json:"price"`
}

// PriceObservation is an externally observed price for a canonical part name.
type PriceObservation struct {
	Part  string   `json:"part"`
	Price *float64 `json:"price"`
}

// BenchmarkInfo is the result of a single part lookup.
type BenchmarkInfo struct {
	Part           string   `json:"part"`
	Score          float64  `json:"score"`
	RelativeScore  *float64 `json:"relative_score,omitempty"`
	BenchmarkTitle string   `json:"benchmark_title"`
	BenchmarkRank  int      `json:"benchmark_rank,omitempty"`
	Category       string   `json:"category"`
	BenchmarkType  string   `json:"benchmark_type"`
	Stale          bool     `json:"stale,omitempty"`
}

// RankedEntry is one evaluated row of a ranking request. BalanceScore is nil
// and Error non-empty when the entry could not be scored; such entries never
// receive an OutputRank.
type RankedEntry struct {
	Part           string   `json:"part"`
	Price          float64  `json:"price"`
	Benchmark      *float64 `json:"benchmark"`
	RelativeScore  *float64 `json:"relative_performance"`
	BalanceScore   *float64 `json:"balance_score"`
	Category       string   `json:"category,omitempty"`
	BenchmarkType  string   `json:"benchmark_type,omitempty"`
	BenchmarkTitle string   `json:"benchmark_title,omitempty"`
	BenchmarkRank  int      `json:"benchmark_rank,omitempty"`
	OutputRank     int      `json:"rank,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// RankResult is the outcome of a ranking request.
type RankResult struct {
	ValidCount    int           `json:"valid_count"`
	InvalidCount  int           `json:"invalid_count"`
	BenchmarkType string        `json:"benchmark_type"`
	Evaluated     []RankedEntry `json:"evaluated"`
}

// TopEntry is one row of a top-performers listing.
type TopEntry struct {
	Name          string   `json:"name"`
	Score         *float64 `json:"score"`
	RelativeScore *float64 `json:"relative_performance"`
	Rank          int      `json:"rank"`
}

// TopResult is the outcome of a top-performers request.
type TopResult struct {
	Category       string     `json:"category"`
	BenchmarkType  string     `json:"benchmark_type"`
	BenchmarkTitle string     `json:"benchmark_title"`
	TopPerformers  []TopEntry `json:"top_performers"`
}

// Selection is the single part chosen from a price window.
type Selection struct {
	Part           string  `json:"part"`
	Price          float64 `json:"price"`
	BenchmarkTitle string  `json:"benchmark_title"`
	BenchmarkRank  int     `json:"benchmark_rank"`
	Category       string  `json:"category"`
	BenchmarkType  string  `json:"benchmark_type"`
}

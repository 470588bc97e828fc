// Package smoke drives a running benchrank server end to end: it generates
// lookup, rank, top and select requests from a seed part list, submits them
// over HTTP and verifies the response invariants.
package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Requests int           // Number of rank requests to generate
	PartsMin int           // Minimum parts per rank request
	PartsMax int           // Maximum parts per rank request
	TopN     int           // Limit for the top-performers request
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// RankedEntry mirrors one evaluated row of a rank response.
type RankedEntry struct {
	Part         string   `json:"part"`
	Price        float64  `json:"price"`
	BalanceScore *float64 `json:"balance_score"`
	OutputRank   int      `json:"rank"`
	Error        string   `json:"error"`
}

// RankResponse mirrors the body of POST /rank.
type RankResponse struct {
	Status       string        `json:"status"`
	ValidCount   int           `json:"valid_count"`
	InvalidCount int           `json:"invalid_count"`
	Evaluated    []RankedEntry `json:"evaluated"`
}

// LookupResponse mirrors the body of GET /lookup.
type LookupResponse struct {
	Status string  `json:"status"`
	Part   string  `json:"part"`
	Score  float64 `json:"score"`
}

// TopResponse mirrors the body of GET /top.
type TopResponse struct {
	Status        string `json:"status"`
	TopPerformers []struct {
		Name string `json:"name"`
		Rank int    `json:"rank"`
	} `json:"top_performers"`
}

// SelectResponse mirrors the body of POST /select.
type SelectResponse struct {
	Status string  `json:"status"`
	Part   string  `json:"part"`
	Price  float64 `json:"price"`
}

// Stats holds smoke run statistics.
type Stats struct {
	LookupsSent  int
	LookupsOK    int
	RanksSent    int
	RanksOK      int
	SelectsSent  int
	SelectsOK    int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

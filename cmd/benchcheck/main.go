package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/partstack/benchrank/internal/smoke"
	"github.com/partstack/benchrank/pkg/logger"
)

// Default configuration constants.
const (
	defaultRequests   = 25
	defaultPartsMin   = 2
	defaultPartsMax   = 8
	defaultTopN       = 10
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		requests = flag.Int("requests", defaultRequests, "Number of rank and select requests to generate")
		partsMin = flag.Int("parts-min", defaultPartsMin, "Minimum parts per generated request")
		partsMax = flag.Int("parts-max", defaultPartsMax, "Maximum parts per generated request")
		topN     = flag.Int("top", defaultTopN, "Limit for the top-performers request")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &smoke.Config{
		BaseURL:  *baseURL,
		Requests: *requests,
		PartsMin: *partsMin,
		PartsMax: *partsMax,
		TopN:     *topN,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := smoke.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

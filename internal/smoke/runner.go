package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/partstack/benchrank/pkg/logger"
)

// Run executes the complete smoke check against a running server.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(config.Timeout)

	logger.Get().Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.Requests),
		logger.Int("topN", config.TopN))

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if err := runLookups(ctx, client, config, stats); err != nil {
		return fmt.Errorf("lookup checks failed: %w", err)
	}

	if err := runRanks(ctx, client, config, stats); err != nil {
		return fmt.Errorf("rank checks failed: %w", err)
	}

	if err := runTop(ctx, client, config); err != nil {
		return fmt.Errorf("top check failed: %w", err)
	}

	if err := runSelects(ctx, client, config, stats); err != nil {
		return fmt.Errorf("select checks failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d checks failed", stats.ChecksFailed)
	}
	logger.Get().Info(ctx, "smoke run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *httpClient, config *Config) error {
	var health struct {
		Status string `json:"status"`
	}
	code, err := client.getJSON(ctx, config.BaseURL+"/healthz", &health)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if code != http.StatusOK {
		return fmt.Errorf("health check returned status %d", code)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// runLookups resolves every seed part once. Misses are expected for the
// deliberately unknown seed names and do not count as failures.
func runLookups(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	for _, part := range seedParts {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var resp LookupResponse
		lookupURL := config.BaseURL + "/lookup?part=" + url.QueryEscape(part)
		code, err := client.getJSON(ctx, lookupURL, &resp)
		if err != nil {
			return fmt.Errorf("lookup %q: %w", part, err)
		}
		stats.LookupsSent++

		switch code {
		case http.StatusOK:
			if resp.Status != "success" || resp.Score <= 0 {
				stats.ChecksFailed++
				logger.Get().Warn(ctx, "lookup envelope check failed", logger.String("part", part))
				continue
			}
			stats.LookupsOK++
		case http.StatusNotFound:
			// A miss is a valid outcome for unknown parts.
			stats.LookupsOK++
		default:
			stats.ChecksFailed++
			logger.Get().Warn(ctx, "unexpected lookup status",
				logger.String("part", part),
				logger.Int("status", code))
		}

		if config.Verbose {
			logger.Get().Debug(ctx, "lookup done",
				logger.String("part", part),
				logger.Int("status", code))
		}
	}
	return nil
}

// runRanks submits generated rank batches and verifies the ordering
// invariants on each response.
func runRanks(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	for i := 0; i < config.Requests; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		body := map[string]any{
			"parts": generateBatch(config.PartsMin, config.PartsMax),
		}
		var resp RankResponse
		code, err := client.postJSON(ctx, config.BaseURL+"/rank", body, &resp)
		if err != nil {
			return fmt.Errorf("rank request %d: %w", i, err)
		}
		stats.RanksSent++

		if code != http.StatusOK {
			stats.ChecksFailed++
			logger.Get().Warn(ctx, "unexpected rank status", logger.Int("status", code))
			continue
		}
		if err := verifyRankResponse(&resp); err != nil {
			stats.ChecksFailed++
			logger.Get().Warn(ctx, "rank invariant violated", logger.Error(err))
			continue
		}
		stats.RanksOK++
	}
	return nil
}

// runTop fetches the top performers and checks the listing is non-empty
// and within the requested limit.
func runTop(ctx context.Context, client *httpClient, config *Config) error {
	var resp TopResponse
	topURL := fmt.Sprintf("%s/top?limit=%d", config.BaseURL, config.TopN)
	code, err := client.getJSON(ctx, topURL, &resp)
	if err != nil {
		return fmt.Errorf("top request: %w", err)
	}
	if code != http.StatusOK || resp.Status != "success" {
		return fmt.Errorf("top returned status %d", code)
	}
	if len(resp.TopPerformers) == 0 {
		return fmt.Errorf("top returned no entries")
	}
	if len(resp.TopPerformers) > config.TopN {
		return fmt.Errorf("top returned %d entries, limit was %d", len(resp.TopPerformers), config.TopN)
	}
	logger.Get().Info(ctx, "top performers retrieved", logger.Int("count", len(resp.TopPerformers)))
	return nil
}

// runSelects submits price-window selections built from generated batches.
func runSelects(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	for i := 0; i < config.Requests; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch := generateBatch(config.PartsMin, config.PartsMax)
		minPrice, maxPrice := priceMin, priceMin+priceRange
		body := map[string]any{
			"prices":    batch,
			"min_price": minPrice,
			"max_price": maxPrice,
		}
		var resp SelectResponse
		code, err := client.postJSON(ctx, config.BaseURL+"/select", body, &resp)
		if err != nil {
			return fmt.Errorf("select request %d: %w", i, err)
		}
		stats.SelectsSent++

		switch code {
		case http.StatusOK:
			if err := verifySelectResponse(&resp, minPrice, maxPrice); err != nil {
				stats.ChecksFailed++
				logger.Get().Warn(ctx, "select invariant violated", logger.Error(err))
				continue
			}
			stats.SelectsOK++
		case http.StatusNotFound:
			// No catalog part in the window is a valid outcome.
			stats.SelectsOK++
		default:
			stats.ChecksFailed++
			logger.Get().Warn(ctx, "unexpected select status", logger.Int("status", code))
		}
	}
	return nil
}

// displayFinalStats prints the final smoke run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("lookupsSent", stats.LookupsSent),
		logger.Int("lookupsOK", stats.LookupsOK),
		logger.Int("ranksSent", stats.RanksSent),
		logger.Int("ranksOK", stats.RanksOK),
		logger.Int("selectsSent", stats.SelectsSent),
		logger.Int("selectsOK", stats.SelectsOK),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))
}

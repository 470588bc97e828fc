// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, optional YAML file, then environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BenchmarkDir is the primary hint for locating the benchmark data
	// files; fallback paths and a bounded search are tried after it.
	BenchmarkDir string `koanf:"benchmark_dir"`

	// MaxTopLimit caps GET /top?limit.
	MaxTopLimit int `koanf:"max_top_limit"`

	// PriceAPIKey authenticates against the shopping-offer API. Empty
	// disables the price feed adapter.
	PriceAPIKey string `koanf:"price_api_key"`

	// PriceAPIBaseURL points at the shopping-offer API.
	PriceAPIBaseURL string `koanf:"price_api_base_url"`

	// PriceEngine selects the upstream search engine.
	PriceEngine string `koanf:"price_engine"`

	// PriceGoogleDomain, PriceGL, PriceHL and PriceLocation geotarget the
	// offer search.
	PriceGoogleDomain string `koanf:"price_google_domain"`
	PriceGL           string `koanf:"price_gl"`
	PriceHL           string `koanf:"price_hl"`
	PriceLocation     string `koanf:"price_location"`

	// PriceTimeoutSeconds bounds each price feed request.
	PriceTimeoutSeconds int `koanf:"price_timeout_seconds"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		BenchmarkDir:        "benchmarks",
		MaxTopLimit:         100,
		PriceAPIBaseURL:     "https://serpapi.com",
		PriceEngine:         "google_shopping",
		PriceGoogleDomain:   "google.ca",
		PriceGL:             "ca",
		PriceHL:             "en",
		PriceLocation:       "Ottawa, Ontario, Canada",
		PriceTimeoutSeconds: 20,
	}
}

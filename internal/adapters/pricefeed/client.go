// Package pricefeed fetches shopping offers from the external price API and
// normalizes them for the selection pipeline. It is a plain I/O adapter: all
// price interpretation happens in the domain packages.
package pricefeed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"context"

	"github.com/google/uuid"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
	"github.com/partstack/benchrank/pkg/metrics"
)

const defaultTimeout = 20 * time.Second

// Offer is one normalized shopping result.
type Offer struct {
	Title     string   `json:"title,omitempty"`
	Store     string   `json:"store,omitempty"`
	PriceText string   `json:"price_text,omitempty"`
	Price     *float64 `json:"price_number,omitempty"`
	URL       string   `json:"url,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	Reviews   *int     `json:"reviews,omitempty"`
	Delivery  string   `json:"delivery,omitempty"`
	Position  *int     `json:"position,omitempty"`
}

// Result is the outcome of one offer search.
type Result struct {
	Query  string  `json:"query"`
	Count  int     `json:"count"`
	Offers []Offer `json:"offers"`
}

// Client calls the shopping-offer API.
type Client struct {
	baseURL      string
	apiKey       string
	engine       string
	googleDomain string
	gl           string
	hl           string
	location     string
	httpClient   *http.Client
	cache        *resultCache
	logger       logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithEngine sets the upstream search engine.
func WithEngine(engine string) Option {
	return func(c *Client) {
		if engine != "" {
			c.engine = engine
		}
	}
}

// WithLocale sets the geotargeting parameters.
func WithLocale(googleDomain, gl, hl, location string) Option {
	return func(c *Client) {
		if googleDomain != "" {
			c.googleDomain = googleDomain
		}
		if gl != "" {
			c.gl = gl
		}
		if hl != "" {
			c.hl = hl
		}
		if location != "" {
			c.location = location
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithCache configures the result cache. A zero ttl or size keeps the
// respective default.
func WithCache(ttl time.Duration, maxSize int) Option {
	return func(c *Client) {
		c.cache = newResultCache(ttl, maxSize)
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates an offer client. The API key is required per request,
// not at construction, so a keyless client can still be wired up.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:      "https://serpapi.com",
		apiKey:       apiKey,
		engine:       "google_shopping",
		googleDomain: "google.ca",
		gl:           "ca",
		hl:           "en",
		location:     "Ottawa, Ontario, Canada",
		httpClient:   &http.Client{Timeout: defaultTimeout},
		cache:        newResultCache(defaultCacheTTL, defaultCacheMaxSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether the client has an API key.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// searchResponse is the subset of the upstream payload we consume.
type searchResponse struct {
	ShoppingResults []struct {
		Title          string   `json:"title"`
		Source         string   `json:"source"`
		Price          string   `json:"price"`
		ExtractedPrice *float64 `json:"extracted_price"`
		ProductLink    string   `json:"product_link"`
		Link           string   `json:"link"`
		Rating         *float64 `json:"rating"`
		Reviews        *int     `json:"reviews"`
		Delivery       string   `json:"delivery"`
		Position       *int     `json:"position"`
	} `json:"shopping_results"`
}

// Offers fetches shopping offers for a product query, sorted by extracted
// price ascending with unpriced offers last. Offers without both a price
// text and a URL are dropped.
func (c *Client) Offers(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, ErrEmptyQuery
	}
	if c.apiKey == "" {
		return Result{}, ErrMissingAPIKey
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("pricefeed")
	}

	if cached, ok := c.cache.get(query); ok {
		metrics.RecordPricefeedRequest("cache_hit", 0)
		return cached, nil
	}

	params := url.Values{}
	params.Set("engine", c.engine)
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("google_domain", c.googleDomain)
	params.Set("gl", c.gl)
	params.Set("hl", c.hl)
	params.Set("location", c.location)

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordPricefeedRequest("network_error", float64(time.Since(start).Milliseconds()))
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.RecordPricefeedRequest("rate_limited", float64(time.Since(start).Milliseconds()))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			return Result{}, fmt.Errorf("%w: retry after %s seconds", ErrRateLimited, retryAfter)
		}
		return Result{}, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		metrics.RecordPricefeedRequest("http_error", float64(time.Since(start).Milliseconds()))
		return Result{}, fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordPricefeedRequest("read_error", float64(time.Since(start).Milliseconds()))
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.RecordPricefeedRequest("decode_error", float64(time.Since(start).Milliseconds()))
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	offers := toOffers(payload)
	metrics.RecordPricefeedRequest("ok", float64(time.Since(start).Milliseconds()))
	c.logger.Info(ctx, "retrieved offers",
		logger.String("query", query),
		logger.String("request_id", requestID),
		logger.Int("count", len(offers)),
	)

	result := Result{Query: query, Count: len(offers), Offers: offers}
	c.cache.put(query, result)
	return result, nil
}

// toOffers normalizes and sorts the upstream shopping results.
func toOffers(payload searchResponse) []Offer {
	offers := make([]Offer, 0, len(payload.ShoppingResults))
	for _, r := range payload.ShoppingResults {
		link := r.ProductLink
		if link == "" {
			link = r.Link
		}
		offer := Offer{
			Title:     r.Title,
			Store:     r.Source,
			PriceText: r.Price,
			Price:     r.ExtractedPrice,
			URL:       link,
			Rating:    r.Rating,
			Reviews:   r.Reviews,
			Delivery:  r.Delivery,
			Position:  r.Position,
		}
		if offer.PriceText == "" || offer.URL == "" {
			continue
		}
		offers = append(offers, offer)
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return offerPrice(offers[i]) < offerPrice(offers[j])
	})
	return offers
}

// offerPrice orders offers by extracted price, pushing unpriced ones last.
func offerPrice(o Offer) float64 {
	if o.Price == nil {
		return 1e12
	}
	return *o.Price
}

// Observations converts the offers of a result into price observations for
// the selection engine, all attributed to the given canonical part name.
func (r Result) Observations(part string) []types.PriceObservation {
	obs := make([]types.PriceObservation, 0, len(r.Offers))
	for _, o := range r.Offers {
		if o.Price == nil {
			continue
		}
		price := *o.Price
		obs = append(obs, types.PriceObservation{Part: part, Price: &price})
	}
	return obs
}

package pricewatch

import (
	"sort"
	"sync"
	"time"

	"github.com/partstack/benchrank/internal/domain/types"
)

// observation is one recorded price with its refresh time.
type observation struct {
	price  float64
	seenAt time.Time
}

// PriceBook holds the freshest observed price per part name.
// Safe for concurrent use.
type PriceBook struct {
	mu      sync.RWMutex
	entries map[string]observation
}

// NewPriceBook creates an empty price book.
func NewPriceBook() *PriceBook {
	return &PriceBook{
		entries: make(map[string]observation),
	}
}

// Record stores the latest price for a part, replacing any prior entry.
func (b *PriceBook) Record(part string, price float64) {
	if part == "" || price <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[part] = observation{price: price, seenAt: time.Now()}
}

// Get returns the recorded price for a part.
func (b *PriceBook) Get(part string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	obs, ok := b.entries[part]
	return obs.price, ok
}

// Len returns the number of parts with a recorded price.
func (b *PriceBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Snapshot returns all recorded prices as selection observations,
// sorted by part name for stable output.
func (b *PriceBook) Snapshot() []types.PriceObservation {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]types.PriceObservation, 0, len(b.entries))
	for part, obs := range b.entries {
		price := obs.price
		out = append(out, types.PriceObservation{Part: part, Price: &price})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Part < out[j].Part
	})
	return out
}

package smoke

import (
	"crypto/rand"
	"math/big"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	priceMin           = 80.0
	priceRange         = 1500.0
)

// seedParts are part names likely to resolve against real catalogs, mixed
// with a few that will not, so invalid-entry handling gets exercised too.
var seedParts = []string{
	"AMD Ryzen 7 7800X3D",
	"AMD Ryzen 5 7600X",
	"AMD Ryzen 9 7950X",
	"Intel Core i7-14700K",
	"Intel Core i5-13600K",
	"Intel Core i9-14900K",
	"GeForce RTX 4070",
	"GeForce RTX 4080 Super",
	"Radeon RX 7800 XT",
	"Radeon RX 7900 XTX",
	"Intel Arc A770",
	"Definitely Not A Real Part 9000",
}

// PricedPart is one (part, price) pair for a rank or select request.
type PricedPart struct {
	Part  string  `json:"part"`
	Price float64 `json:"price"`
}

// randomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// randomInt returns a random int in [0, max).
func randomInt(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// generateBatch picks a random subset of the seed parts with random prices.
func generateBatch(minParts, maxParts int) []PricedPart {
	if minParts < 1 {
		minParts = 1
	}
	if maxParts < minParts {
		maxParts = minParts
	}
	count := minParts + randomInt(maxParts-minParts+1)
	if count > len(seedParts) {
		count = len(seedParts)
	}

	// Shuffle a copy of the seed list and take a prefix.
	parts := make([]string, len(seedParts))
	copy(parts, seedParts)
	for i := len(parts) - 1; i > 0; i-- {
		j := randomInt(i + 1)
		parts[i], parts[j] = parts[j], parts[i]
	}

	batch := make([]PricedPart, count)
	for i := 0; i < count; i++ {
		batch[i] = PricedPart{
			Part:  parts[i],
			Price: priceMin + randomFloat()*priceRange,
		}
	}
	return batch
}

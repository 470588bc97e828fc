// Package selection picks a part from a price window using catalog ranks
// and externally observed prices.
package selection

import (
	"sort"

	"github.com/partstack/benchrank/internal/domain/model"
	"github.com/partstack/benchrank/internal/domain/types"
)

// BuildPriceMap reduces price observations to the lowest observed price per
// part. Names are matched exactly (case-sensitive): observations are
// expected to carry canonical catalog names, so no fuzzy matching happens
// at this stage.
func BuildPriceMap(prices []types.PriceObservation) map[string]float64 {
	priceMap := make(map[string]float64, len(prices))
	for _, obs := range prices {
		if obs.Part == "" || obs.Price == nil {
			continue
		}
		if existing, ok := priceMap[obs.Part]; !ok || *obs.Price < existing {
			priceMap[obs.Part] = *obs.Price
		}
	}
	return priceMap
}

// RankedDescending returns the catalog's ranked records sorted by rank
// descending (worst numeric rank first), stable over file order. This is
// the literal upstream ordering and is deliberately preserved; see also
// the top-performers listing, which shares it.
func RankedDescending(cat *model.Catalog) []model.BenchmarkRecord {
	ranked := make([]model.BenchmarkRecord, 0, cat.Len())
	for _, name := range cat.Names {
		if rec, ok := cat.Get(name); ok && rec.HasRank() {
			ranked = append(ranked, rec)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rank > ranked[j].Rank
	})
	return ranked
}

// BestInRange scans the rank-descending list and returns the first record
// whose observed price falls within the optional [minPrice, maxPrice]
// bounds, together with that price.
//
// Returns ErrNoPrices when the observations contain no usable price at all,
// and ErrNotFound when no ranked part lands in the window.
func BestInRange(cat *model.Catalog, minPrice, maxPrice *float64, prices []types.PriceObservation) (model.BenchmarkRecord, float64, error) {
	if len(prices) == 0 {
		return model.BenchmarkRecord{}, 0, ErrNoPrices
	}
	priceMap := BuildPriceMap(prices)
	if len(priceMap) == 0 {
		return model.BenchmarkRecord{}, 0, ErrNoPrices
	}

	for _, rec := range RankedDescending(cat) {
		price, ok := priceMap[rec.Name]
		if !ok {
			continue
		}
		if minPrice != nil && price < *minPrice {
			continue
		}
		if maxPrice != nil && price > *maxPrice {
			continue
		}
		return rec, price, nil
	}

	return model.BenchmarkRecord{}, 0, ErrNotFound
}

package selection_test

import (
	"testing"

	"github.com/partstack/benchrank/internal/domain/model"
	selection "github.com/partstack/benchrank/internal/domain/selection"
	"github.com/partstack/benchrank/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(f float64) *float64 { return &f }

func rankedCatalog() *model.Catalog {
	cat := model.NewCatalog(model.KindCPUGaming, "Processor Gaming Benchmark")
	cat.Add(model.BenchmarkRecord{Name: "Alpha", Score: ptr(90), Rank: 2})
	cat.Add(model.BenchmarkRecord{Name: "Bravo", Score: ptr(80), Rank: 4})
	cat.Add(model.BenchmarkRecord{Name: "Charlie", Score: ptr(70), Rank: 1})
	cat.Add(model.BenchmarkRecord{Name: "Delta", Score: ptr(60)}) // unranked
	return cat
}

func TestBuildPriceMap(t *testing.T) {
	Convey("Given price observations", t, func() {
		obs := []types.PriceObservation{
			{Part: "Alpha", Price: ptr(300)},
			{Part: "Alpha", Price: ptr(250)},
			{Part: "Alpha", Price: ptr(280)},
			{Part: "Bravo", Price: ptr(150)},
			{Part: "", Price: ptr(100)},
			{Part: "Charlie", Price: nil},
		}

		Convey("When building the price map", func() {
			priceMap := selection.BuildPriceMap(obs)

			Convey("Then each part keeps its lowest price", func() {
				So(priceMap["Alpha"], ShouldEqual, 250)
				So(priceMap["Bravo"], ShouldEqual, 150)
			})

			Convey("And unnamed or unpriced observations are dropped", func() {
				So(priceMap, ShouldNotContainKey, "")
				So(priceMap, ShouldNotContainKey, "Charlie")
			})
		})
	})
}

func TestRankedDescending(t *testing.T) {
	Convey("Given a catalog with ranked and unranked records", t, func() {
		cat := rankedCatalog()

		Convey("When listing ranked records", func() {
			ranked := selection.RankedDescending(cat)

			Convey("Then only ranked records appear, rank descending", func() {
				So(len(ranked), ShouldEqual, 3)
				So(ranked[0].Name, ShouldEqual, "Bravo")
				So(ranked[1].Name, ShouldEqual, "Alpha")
				So(ranked[2].Name, ShouldEqual, "Charlie")
			})
		})
	})
}

func TestBestInRange(t *testing.T) {
	Convey("Given a ranked catalog and observed prices", t, func() {
		cat := rankedCatalog()
		obs := []types.PriceObservation{
			{Part: "Alpha", Price: ptr(400)},
			{Part: "Bravo", Price: ptr(150)},
			{Part: "Charlie", Price: ptr(90)},
		}

		Convey("When selecting with an open window", func() {
			rec, price, err := selection.BestInRange(cat, nil, nil, obs)

			Convey("Then the first record in scan order wins", func() {
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "Bravo")
				So(price, ShouldEqual, 150)
			})
		})

		Convey("When the window excludes the first candidates", func() {
			rec, price, err := selection.BestInRange(cat, ptr(50), ptr(100), obs)

			Convey("Then the scan continues to a part inside the window", func() {
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "Charlie")
				So(price, ShouldEqual, 90)
			})
		})

		Convey("When a boundary price equals the bound", func() {
			rec, _, err := selection.BestInRange(cat, ptr(150), ptr(150), obs)

			Convey("Then the bounds are inclusive", func() {
				So(err, ShouldBeNil)
				So(rec.Name, ShouldEqual, "Bravo")
			})
		})

		Convey("When no part lands in the window", func() {
			_, _, err := selection.BestInRange(cat, ptr(1000), ptr(2000), obs)

			Convey("Then selection reports not found", func() {
				So(err, ShouldEqual, selection.ErrNotFound)
			})
		})

		Convey("When there are no observations", func() {
			_, _, err := selection.BestInRange(cat, nil, nil, nil)

			Convey("Then selection reports missing prices", func() {
				So(err, ShouldEqual, selection.ErrNoPrices)
			})
		})

		Convey("When every observation is unusable", func() {
			bad := []types.PriceObservation{{Part: "Alpha", Price: nil}, {Part: "", Price: ptr(10)}}
			_, _, err := selection.BestInRange(cat, nil, nil, bad)

			Convey("Then selection reports missing prices", func() {
				So(err, ShouldEqual, selection.ErrNoPrices)
			})
		})
	})
}

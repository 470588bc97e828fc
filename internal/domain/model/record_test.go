package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/partstack/benchrank/internal/domain/model"
)

func ptr(f float64) *float64 { return &f }

func TestCatalog(t *testing.T) {
	Convey("Given an empty catalog", t, func() {
		cat := model.NewCatalog(model.KindCPUGaming, "CPU Gaming Benchmark")

		Convey("When records are added", func() {
			cat.Add(model.BenchmarkRecord{Name: "AMD Ryzen 7 7800X3D", Score: ptr(98.5), Rank: 1})
			cat.Add(model.BenchmarkRecord{Name: "Intel Core i7-14700K", Score: ptr(91.2), Rank: 2})

			Convey("Then they are retrievable by exact name", func() {
				rec, ok := cat.Get("AMD Ryzen 7 7800X3D")
				So(ok, ShouldBeTrue)
				So(*rec.Score, ShouldEqual, 98.5)
				So(cat.Len(), ShouldEqual, 2)
			})

			Convey("Then the name order follows insertion order", func() {
				So(cat.Names, ShouldResemble, []string{"AMD Ryzen 7 7800X3D", "Intel Core i7-14700K"})
			})

			Convey("Then a duplicate name keeps the first record", func() {
				cat.Add(model.BenchmarkRecord{Name: "AMD Ryzen 7 7800X3D", Score: ptr(1.0), Rank: 99})
				rec, _ := cat.Get("AMD Ryzen 7 7800X3D")
				So(rec.Rank, ShouldEqual, 1)
				So(cat.Len(), ShouldEqual, 2)
			})

			Convey("Then a blank name is ignored", func() {
				cat.Add(model.BenchmarkRecord{Name: ""})
				So(cat.Len(), ShouldEqual, 2)
			})
		})
	})
}

func TestBenchmarkRecordHasRank(t *testing.T) {
	Convey("Given benchmark records", t, func() {
		Convey("When the rank is positive", func() {
			rec := model.BenchmarkRecord{Name: "A", Rank: 3}

			Convey("Then it has a usable rank", func() {
				So(rec.HasRank(), ShouldBeTrue)
			})
		})

		Convey("When the rank is absent", func() {
			rec := model.BenchmarkRecord{Name: "A"}

			Convey("Then it has no usable rank", func() {
				So(rec.HasRank(), ShouldBeFalse)
			})
		})
	})
}

func TestKinds(t *testing.T) {
	Convey("Given the catalog kinds", t, func() {
		Convey("When listed", func() {
			kinds := model.Kinds()

			Convey("Then all three kinds appear in fixed order", func() {
				So(kinds, ShouldResemble, []model.Kind{
					model.KindCPUGaming,
					model.KindCPUSoftware,
					model.KindGPU,
				})
			})
		})
	})
}

package ranking_test

import (
	"context"
	"fmt"
	"testing"

	ranking "github.com/partstack/benchrank/internal/domain/ranking"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func ptr(f float64) *float64 { return &f }

// mockResolver resolves part names from a fixed table.
type mockResolver struct {
	infos map[string]types.BenchmarkInfo
}

func (m *mockResolver) Resolve(_ context.Context, part, _ string) (types.BenchmarkInfo, error) {
	info, ok := m.infos[part]
	if !ok {
		return types.BenchmarkInfo{}, fmt.Errorf("no benchmark found for %s", part)
	}
	return info, nil
}

func newEngine(infos map[string]types.BenchmarkInfo) *ranking.Engine {
	return ranking.NewEngine(&mockResolver{infos: infos})
}

func TestEngine_ComputeBalance(t *testing.T) {
	Convey("Given an engine over a fixed benchmark table", t, func() {
		engine := newEngine(map[string]types.BenchmarkInfo{
			"PartA":  {Part: "PartA", Score: 95, BenchmarkRank: 10, Category: "cpu"},
			"PartB":  {Part: "PartB", Score: 90, BenchmarkRank: 5, Category: "cpu"},
			"PartC":  {Part: "PartC", Score: 85, BenchmarkRank: 8, Category: "cpu"},
			"NoRank": {Part: "NoRank", Score: 50, BenchmarkRank: 0, Category: "cpu"},
		})

		Convey("When the input is empty", func() {
			_, err := engine.ComputeBalance(context.Background(), nil, "")

			Convey("Then the batch fails with the empty-input error", func() {
				So(err, ShouldEqual, ranking.ErrEmptyInput)
			})
		})

		Convey("When two entries produce equal balance scores", func() {
			// 10/100 == 5/50 == 0.1
			parts := []types.PartPrice{
				{Part: "PartA", Price: ptr(100)},
				{Part: "PartB", Price: ptr(50)},
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then the stable sort preserves input order", func() {
				So(err, ShouldBeNil)
				So(result.ValidCount, ShouldEqual, 2)
				So(result.Evaluated[0].Part, ShouldEqual, "PartA")
				So(result.Evaluated[1].Part, ShouldEqual, "PartB")
				So(result.Evaluated[0].OutputRank, ShouldEqual, 1)
				So(result.Evaluated[1].OutputRank, ShouldEqual, 2)
			})
		})

		Convey("When entries have distinct balance scores", func() {
			parts := []types.PartPrice{
				{Part: "PartB", Price: ptr(100)}, // 0.05
				{Part: "PartA", Price: ptr(50)},  // 0.2
				{Part: "PartC", Price: ptr(100)}, // 0.08
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then entries sort by balance descending with dense ranks", func() {
				So(err, ShouldBeNil)
				So(result.Evaluated[0].Part, ShouldEqual, "PartA")
				So(result.Evaluated[1].Part, ShouldEqual, "PartC")
				So(result.Evaluated[2].Part, ShouldEqual, "PartB")
				So(*result.Evaluated[0].BalanceScore, ShouldAlmostEqual, 0.2)
				So(result.Evaluated[2].OutputRank, ShouldEqual, 3)
			})
		})

		Convey("When an entry has a missing or non-positive price", func() {
			parts := []types.PartPrice{
				{Part: "PartA", Price: ptr(100)},
				{Part: "PartB", Price: nil},
				{Part: "PartC", Price: ptr(-5)},
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then the entry is error-tagged, not fatal", func() {
				So(err, ShouldBeNil)
				So(result.ValidCount, ShouldEqual, 1)
				So(result.InvalidCount, ShouldEqual, 2)
			})

			Convey("And invalid entries follow the ranked ones without ranks", func() {
				So(err, ShouldBeNil)
				So(result.Evaluated[0].Part, ShouldEqual, "PartA")
				So(result.Evaluated[1].Error, ShouldContainSubstring, "invalid price")
				So(result.Evaluated[1].OutputRank, ShouldEqual, 0)
				So(result.Evaluated[2].Error, ShouldContainSubstring, "invalid price")
			})
		})

		Convey("When a part cannot be resolved", func() {
			parts := []types.PartPrice{
				{Part: "Unknown Ryzen Thing", Price: ptr(200)},
				{Part: "PartA", Price: ptr(100)},
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then the miss becomes an error-tagged entry", func() {
				So(err, ShouldBeNil)
				So(result.ValidCount, ShouldEqual, 1)
				So(result.InvalidCount, ShouldEqual, 1)
				So(result.Evaluated[1].Part, ShouldEqual, "Unknown Ryzen Thing")
				So(result.Evaluated[1].Error, ShouldContainSubstring, "no benchmark found")
				So(result.Evaluated[1].Category, ShouldEqual, "cpu")
			})
		})

		Convey("When a resolved part has no benchmark rank", func() {
			parts := []types.PartPrice{
				{Part: "NoRank", Price: ptr(100)},
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then the entry is rejected with a rank error", func() {
				So(err, ShouldBeNil)
				So(result.ValidCount, ShouldEqual, 0)
				So(result.Evaluated[0].Error, ShouldContainSubstring, "invalid benchmark rank")
			})
		})

		Convey("When an entry has a blank part name", func() {
			parts := []types.PartPrice{
				{Part: "", Price: ptr(100)},
				{Part: "PartA", Price: ptr(100)},
			}
			result, err := engine.ComputeBalance(context.Background(), parts, "")

			Convey("Then the blank entry is skipped entirely", func() {
				So(err, ShouldBeNil)
				So(len(result.Evaluated), ShouldEqual, 1)
				So(result.Evaluated[0].Part, ShouldEqual, "PartA")
			})
		})
	})
}

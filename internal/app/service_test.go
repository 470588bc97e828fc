package app_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/partstack/benchrank/internal/app"
	"github.com/partstack/benchrank/internal/domain/match"
	"github.com/partstack/benchrank/internal/domain/model"
	"github.com/partstack/benchrank/internal/domain/selection"
	"github.com/partstack/benchrank/internal/domain/types"
	"github.com/partstack/benchrank/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockStore implements repository.Store over fixed in-memory catalogs.
type mockStore struct {
	catalogs  map[model.Kind]*model.Catalog
	indexes   map[model.Kind]*match.Index
	loadErr   error
	loads     int
	attempted []string
}

func newMockStore(catalogs ...*model.Catalog) *mockStore {
	s := &mockStore{
		catalogs: make(map[model.Kind]*model.Catalog),
		indexes:  make(map[model.Kind]*match.Index),
	}
	for _, kind := range model.Kinds() {
		s.catalogs[kind] = model.NewCatalog(kind, string(kind))
	}
	for _, cat := range catalogs {
		s.catalogs[cat.Kind] = cat
	}
	for kind, cat := range s.catalogs {
		s.indexes[kind] = match.NewIndex(cat)
	}
	return s
}

func (s *mockStore) Load(_ context.Context, _ string) error {
	s.loads++
	return s.loadErr
}

func (s *mockStore) Catalog(kind model.Kind) *model.Catalog {
	return s.catalogs[kind]
}

func (s *mockStore) Lookup(_ context.Context, kind model.Kind, query string) (model.BenchmarkRecord, bool) {
	ix, ok := s.indexes[kind]
	if !ok {
		return model.BenchmarkRecord{}, false
	}
	return ix.Lookup(query)
}

func (s *mockStore) Empty() bool {
	for _, cat := range s.catalogs {
		if cat.Len() > 0 {
			return false
		}
	}
	return true
}

func (s *mockStore) AttemptedPaths() []string { return s.attempted }

func (s *mockStore) ResolvedDir() string { return "" }

func ptr(f float64) *float64 { return &f }

func record(name string, score float64, rank int) model.BenchmarkRecord {
	return model.BenchmarkRecord{Name: name, Score: ptr(score), RelativeScore: ptr(score), Rank: rank}
}

// testStore builds catalogs with a handful of parts across all three kinds.
func testStore() *mockStore {
	gaming := model.NewCatalog(model.KindCPUGaming, "CPU Gaming Benchmark")
	gaming.Add(record("AMD Ryzen 7 7800X3D", 98.5, 1))
	gaming.Add(record("Intel Core i7-14700K", 91.2, 2))
	gaming.Add(model.BenchmarkRecord{Name: "Ancient CPU", Rank: 0})

	software := model.NewCatalog(model.KindCPUSoftware, "CPU Software Benchmark")
	software.Add(record("AMD Threadripper 7980X", 99.9, 1))

	gpu := model.NewCatalog(model.KindGPU, "GPU Benchmark Rankings")
	gpu.Add(record("NVIDIA GeForce RTX 4090", 100.0, 1))
	gpu.Add(record("AMD Radeon RX 7900 XTX", 84.3, 2))

	return newMockStore(gaming, software, gpu)
}

func startedService(t *testing.T, opts ...app.Option) *app.Service {
	t.Helper()
	svc := app.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("starting service: %v", err)
	}
	return svc
}

func TestServiceLookup(t *testing.T) {
	Convey("Given a started service over populated catalogs", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		Convey("When a CPU is looked up with explicit category and type", func() {
			info, err := svc.Lookup(ctx, "ryzen 7 7800x3d", "cpu", "gaming")

			Convey("Then the gaming catalog record is returned", func() {
				So(err, ShouldBeNil)
				So(info.Part, ShouldEqual, "AMD Ryzen 7 7800X3D")
				So(info.Score, ShouldEqual, 98.5)
				So(info.BenchmarkRank, ShouldEqual, 1)
				So(info.Category, ShouldEqual, "cpu")
				So(info.BenchmarkType, ShouldEqual, "gaming")
				So(info.BenchmarkTitle, ShouldEqual, "CPU Gaming Benchmark")
			})
		})

		Convey("When the category is omitted", func() {
			info, err := svc.Lookup(ctx, "Threadripper 7980X", "", "software")

			Convey("Then it is detected from the part name", func() {
				So(err, ShouldBeNil)
				So(info.Category, ShouldEqual, "cpu")
				So(info.BenchmarkTitle, ShouldEqual, "CPU Software Benchmark")
			})
		})

		Convey("When a GPU is looked up with a software type", func() {
			info, err := svc.Lookup(ctx, "RTX 4090", "gpu", "software")

			Convey("Then the type collapses to gaming", func() {
				So(err, ShouldBeNil)
				So(info.BenchmarkType, ShouldEqual, "gaming")
				So(info.Part, ShouldEqual, "NVIDIA GeForce RTX 4090")
			})
		})

		Convey("When the part name is blank", func() {
			_, err := svc.Lookup(ctx, "   ", "cpu", "gaming")

			Convey("Then the missing part error is returned", func() {
				So(errors.Is(err, app.ErrMissingPart), ShouldBeTrue)
			})
		})

		Convey("When the category is unknown", func() {
			_, err := svc.Lookup(ctx, "RTX 4090", "fpga", "gaming")

			Convey("Then the unknown category error is returned", func() {
				So(errors.Is(err, app.ErrUnknownCategory), ShouldBeTrue)
			})
		})

		Convey("When no record matches", func() {
			_, err := svc.Lookup(ctx, "Quantum Processor X", "cpu", "gaming")

			Convey("Then the not found error is returned", func() {
				So(errors.Is(err, app.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the matched record has no score", func() {
			_, err := svc.Lookup(ctx, "Ancient CPU", "cpu", "gaming")

			Convey("Then the not found error is returned", func() {
				So(errors.Is(err, app.ErrNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service over empty catalogs", t, func() {
		ctx := context.Background()
		store := newMockStore()
		store.attempted = []string{"benchmarks", "data/benchmarks"}
		svc := startedService(t, app.WithStore(store))
		Reset(svc.Stop)

		Convey("When a lookup runs", func() {
			_, err := svc.Lookup(ctx, "RTX 4090", "gpu", "")

			Convey("Then the empty catalog error names the attempted paths", func() {
				So(errors.Is(err, app.ErrCatalogEmpty), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "benchmarks")
			})
		})
	})

	Convey("Given a store whose load fails", t, func() {
		ctx := context.Background()
		store := testStore()
		store.loadErr = errors.New("corrupt data file")
		svc := startedService(t, app.WithStore(store))
		Reset(svc.Stop)

		Convey("When a lookup runs", func() {
			_, err := svc.Lookup(ctx, "RTX 4090", "gpu", "")

			Convey("Then the load error propagates", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "corrupt data file")
			})
		})
	})
}

func TestServiceRank(t *testing.T) {
	Convey("Given a started service over populated catalogs", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		Convey("When a batch of priced parts is ranked", func() {
			parts := []types.PartPrice{
				{Part: "Ryzen 7 7800X3D", Price: ptr(100)},
				{Part: "Core i7 14700K", Price: ptr(50)},
				{Part: "Mystery Part 9000", Price: ptr(75)},
			}
			result, err := svc.Rank(ctx, parts, "gaming")

			Convey("Then scored entries are sorted by balance with dense ranks", func() {
				So(err, ShouldBeNil)
				So(result.ValidCount, ShouldEqual, 2)
				So(result.InvalidCount, ShouldEqual, 1)
				So(result.Evaluated, ShouldHaveLength, 3)

				// rank 2 / 50 = 0.04 beats rank 1 / 100 = 0.01
				So(result.Evaluated[0].Part, ShouldEqual, "Core i7 14700K")
				So(result.Evaluated[0].OutputRank, ShouldEqual, 1)
				So(result.Evaluated[1].Part, ShouldEqual, "Ryzen 7 7800X3D")
				So(result.Evaluated[1].OutputRank, ShouldEqual, 2)
			})

			Convey("Then the unresolved entry is flagged without a rank", func() {
				So(err, ShouldBeNil)
				last := result.Evaluated[2]
				So(last.Part, ShouldEqual, "Mystery Part 9000")
				So(last.Error, ShouldNotBeEmpty)
				So(last.OutputRank, ShouldEqual, 0)
			})
		})

		Convey("When the parts list is empty", func() {
			_, err := svc.Rank(ctx, nil, "gaming")

			Convey("Then a validation error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceTop(t *testing.T) {
	Convey("Given a started service over populated catalogs", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		Convey("When the top CPUs are listed", func() {
			result, err := svc.Top(ctx, "cpu", "gaming", 0)

			Convey("Then ranked parts come back in scan order without unranked ones", func() {
				So(err, ShouldBeNil)
				So(result.TopPerformers, ShouldHaveLength, 2)
				So(result.TopPerformers[0].Name, ShouldEqual, "Intel Core i7-14700K")
				So(result.TopPerformers[1].Name, ShouldEqual, "AMD Ryzen 7 7800X3D")
				So(result.BenchmarkTitle, ShouldEqual, "CPU Gaming Benchmark")
			})
		})

		Convey("When the limit is below the catalog size", func() {
			result, err := svc.Top(ctx, "cpu", "gaming", 1)

			Convey("Then the listing is truncated", func() {
				So(err, ShouldBeNil)
				So(result.TopPerformers, ShouldHaveLength, 1)
			})
		})

		Convey("When the category is unknown", func() {
			_, err := svc.Top(ctx, "fpga", "gaming", 5)

			Convey("Then the unknown category error is returned", func() {
				So(errors.Is(err, app.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service with a low listing cap", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()), app.WithMaxTopLimit(1))
		Reset(svc.Stop)

		Convey("When a larger limit is requested", func() {
			result, err := svc.Top(ctx, "cpu", "gaming", 50)

			Convey("Then the cap wins", func() {
				So(err, ShouldBeNil)
				So(result.TopPerformers, ShouldHaveLength, 1)
			})
		})
	})
}

func TestServiceSelectBest(t *testing.T) {
	Convey("Given a started service over populated catalogs", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		prices := []types.PriceObservation{
			{Part: "AMD Ryzen 7 7800X3D", Price: ptr(450)},
			{Part: "Intel Core i7-14700K", Price: ptr(380)},
		}

		Convey("When no bounds are given", func() {
			sel, err := svc.SelectBest(ctx, "cpu", "gaming", nil, nil, prices)

			Convey("Then the first part in scan order wins", func() {
				So(err, ShouldBeNil)
				So(sel.Part, ShouldEqual, "Intel Core i7-14700K")
				So(sel.Price, ShouldEqual, 380)
			})
		})

		Convey("When a minimum excludes the first candidate", func() {
			sel, err := svc.SelectBest(ctx, "cpu", "gaming", ptr(400), nil, prices)

			Convey("Then the next in-range part wins", func() {
				So(err, ShouldBeNil)
				So(sel.Part, ShouldEqual, "AMD Ryzen 7 7800X3D")
			})
		})

		Convey("When no part fits the window", func() {
			_, err := svc.SelectBest(ctx, "cpu", "gaming", nil, ptr(100), prices)

			Convey("Then the not found error is returned", func() {
				So(errors.Is(err, selection.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When no prices are supplied and no price book exists", func() {
			_, err := svc.SelectBest(ctx, "cpu", "gaming", nil, nil, nil)

			Convey("Then the no prices error is returned", func() {
				So(errors.Is(err, selection.ErrNoPrices), ShouldBeTrue)
			})
		})
	})
}

func TestServicePriceFeedDisabled(t *testing.T) {
	Convey("Given a service without a price client", t, func() {
		ctx := context.Background()
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		Convey("When offers are requested", func() {
			_, err := svc.Offers(ctx, "RTX 4090")

			Convey("Then the disabled error is returned", func() {
				So(errors.Is(err, app.ErrPriceFeedDisabled), ShouldBeTrue)
			})
		})

		Convey("When a refresh is requested", func() {
			_, err := svc.RefreshPrices(ctx, []string{"RTX 4090"})

			Convey("Then the disabled error is returned", func() {
				So(errors.Is(err, app.ErrPriceFeedDisabled), ShouldBeTrue)
			})
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService(t, app.WithStore(testStore()))
		Reset(svc.Stop)

		Convey("When stats are read", func() {
			stats := svc.GetStats()

			Convey("Then they report service and catalog state", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["priceFeedEnabled"], ShouldEqual, false)
				So(stats["cpu_gaming_records"], ShouldEqual, 3)
				So(stats["gpu_records"], ShouldEqual, 2)
			})
		})
	})
}

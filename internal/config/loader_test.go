package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/partstack/benchrank/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no configuration overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.BenchmarkDir, ShouldEqual, "benchmarks")
			So(cfg.MaxTopLimit, ShouldEqual, 100)
			So(cfg.PriceAPIKey, ShouldEqual, "")
			So(cfg.PriceEngine, ShouldEqual, "google_shopping")
			So(cfg.PriceTimeoutSeconds, ShouldEqual, 20)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BENCHRANK_ADDR", ":7070")
	t.Setenv("BENCHRANK_LOG_LEVEL", "debug")
	t.Setenv("BENCHRANK_BENCHMARK_DIR", "/srv/benchmarks")
	t.Setenv("BENCHRANK_MAX_TOP_LIMIT", "25")

	Convey("Given prefixed environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.BenchmarkDir, ShouldEqual, "/srv/benchmarks")
			So(cfg.MaxTopLimit, ShouldEqual, 25)
		})
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("addr: \":6060\"\nlog_level: warn\nprice_api_key: file-key\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("BENCHRANK_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then its values layer over the defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.PriceAPIKey, ShouldEqual, "file-key")
			So(cfg.BenchmarkDir, ShouldEqual, "benchmarks")
		})
	})

	Convey("Given env overrides on top of the file", t, func() {
		t.Setenv("BENCHRANK_ADDR", ":5050")
		cfg, err := config.Load(context.Background())

		Convey("Then env beats file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
			So(cfg.LogLevel, ShouldEqual, "warn")
		})
	})
}

func TestLoadErrors(t *testing.T) {
	Convey("Given a missing config file", t, func() {
		t.Setenv("BENCHRANK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := config.Load(context.Background())

		Convey("Then loading fails", func() {
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})

	Convey("Given an invalid top limit", t, func() {
		t.Setenv("BENCHRANK_CONFIG", "")
		t.Setenv("BENCHRANK_MAX_TOP_LIMIT", "0")
		_, err := config.Load(context.Background())

		Convey("Then validation fails", func() {
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestPriceKeyFallback(t *testing.T) {
	t.Setenv("PRICE_API_KEY", "legacy-key")

	Convey("Given only the conventional price key env var", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then it is accepted as the price API key", func() {
			So(err, ShouldBeNil)
			So(cfg.PriceAPIKey, ShouldEqual, "legacy-key")
		})
	})

	Convey("Given the prefixed form as well", t, func() {
		t.Setenv("BENCHRANK_PRICE_API_KEY", "prefixed-key")
		cfg, err := config.Load(context.Background())

		Convey("Then the prefixed form wins", func() {
			So(err, ShouldBeNil)
			So(cfg.PriceAPIKey, ShouldEqual, "prefixed-key")
		})
	})
}

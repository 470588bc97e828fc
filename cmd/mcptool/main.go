package main

import (
	"context"
	"os"
	"time"

	"github.com/partstack/benchrank/internal/adapters/mcptool"
	"github.com/partstack/benchrank/internal/adapters/pricefeed"
	app "github.com/partstack/benchrank/internal/app"
	"github.com/partstack/benchrank/internal/config"
	"github.com/partstack/benchrank/pkg/logger"
)

func main() {
	// Stdout carries the MCP protocol, so all logging goes to stderr.
	if err := logger.InitStderr(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	loggerInstance := logger.Get()
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	priceClient := pricefeed.NewClient(cfg.PriceAPIKey,
		pricefeed.WithBaseURL(cfg.PriceAPIBaseURL),
		pricefeed.WithEngine(cfg.PriceEngine),
		pricefeed.WithLocale(cfg.PriceGoogleDomain, cfg.PriceGL, cfg.PriceHL, cfg.PriceLocation),
		pricefeed.WithTimeout(time.Duration(cfg.PriceTimeoutSeconds)*time.Second),
		pricefeed.WithLogger(loggerInstance.Named("pricefeed")),
	)

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithBenchmarkDir(cfg.BenchmarkDir),
		app.WithMaxTopLimit(cfg.MaxTopLimit),
		app.WithPriceClient(priceClient),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer svc.Stop()

	srv := mcptool.NewServer(svc, mcptool.WithLogger(loggerInstance.Named("mcptool")))

	loggerInstance.Info(ctx, "serving MCP tools on stdio")
	if err := srv.ServeStdio(); err != nil {
		loggerInstance.Error(ctx, "MCP server stopped", logger.Error(err))
		os.Exit(1)
	}
}

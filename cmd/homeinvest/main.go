package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cloud-ru/homeinvest-go/internal/cli"
	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/internal/logging"
	"github.com/cloud-ru/homeinvest-go/internal/metrics"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
	"github.com/cloud-ru/homeinvest-go/internal/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		logger.WithError(err).Warn("falling back to info log level")
	}

	ctx := context.Background()

	shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		logger.WithError(err).Error("failed to init tracing")
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.WithError(err).Warn("failed to shutdown tracer provider")
		}
	}()

	service := reports.NewService(cfg, tracing.Tracer, logger)
	runErr := cli.NewRootCommand(cfg, service, logger).ExecuteContext(ctx)

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.WithError(err).Warn("failed to write metrics")
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

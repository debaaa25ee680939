package main

import (
	"context"
	_ "embed"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"meteogram/apis/yr"
	"meteogram/cli"
	"meteogram/config"
	"meteogram/manager"
	"meteogram/observability"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	if err := run(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configRaw)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	meteogramManager := manager.New(yr.New(cfg.Yr, logger, metrics), logger, metrics)

	cmd, err := cli.New(meteogramManager, cfg.Defaults)
	if err != nil {
		return err
	}

	err = cmd.ExecuteContext(ctx)

	if cfg.Metrics.Textfile != "" {
		if writeErr := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry); writeErr != nil {
			logger.Errorw("write metrics textfile", "path", cfg.Metrics.Textfile, "error", writeErr)
		}
	}

	return err
}

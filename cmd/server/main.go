package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/setup"
	"github.com/bornholm/feedback/internal/slogx"
	"github.com/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "server stopped", slogx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := config.Parse()
	if err != nil {
		return errors.Wrap(err, "could not parse config")
	}

	slog.SetDefault(setup.NewLoggerFromConfig(conf, os.Stderr))

	slog.DebugContext(ctx, "using configuration",
		slog.String("address", conf.HTTP.Address),
		slog.String("baseURL", conf.HTTP.BaseURL),
		slog.String("dsn", conf.Storage.Database.DSN),
		slog.Duration("busyTimeout", conf.Storage.Database.BusyTimeout),
		slog.Bool("metrics", conf.HTTP.Metrics.Enabled),
	)

	if err := setup.SeedFromConfig(ctx, conf); err != nil {
		return errors.Wrap(err, "could not seed store")
	}

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not setup http server")
	}

	slog.InfoContext(ctx, "starting server, use ctrl+c to interrupt", slog.String("address", conf.HTTP.Address))

	if err := server.Run(ctx); err != nil {
		return errors.Wrap(err, "could not run server")
	}

	slog.InfoContext(ctx, "server stopped gracefully")

	return nil
}

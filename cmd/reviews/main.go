package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bornholm/feedback/internal/command/reviews"
	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/setup"
	"github.com/bornholm/feedback/internal/slogx"
	"github.com/bornholm/feedback/internal/store"
	"github.com/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.SetDefault(setup.NewLoggerFromConfig(conf, os.Stderr))

	openStore := func(ctx context.Context) (*store.Store, error) {
		return setup.NewStoreFromConfig(ctx, conf)
	}

	if err := reviews.NewCommand(openStore, os.Stdout).Run(ctx, os.Args); err != nil {
		slog.ErrorContext(ctx, "command failed", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

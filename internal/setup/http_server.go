package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/http"
	"github.com/bornholm/feedback/internal/http/handler/metrics"
	"github.com/bornholm/feedback/internal/http/handler/webui"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithLogger(slog.Default()),
		http.WithTimeouts(http.Timeouts{
			ReadHeader: conf.HTTP.ReadHeaderTimeout,
			Shutdown:   conf.HTTP.ShutdownTimeout,
		}),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, http.WithMount("/metrics/", metrics.NewHandler(prometheus.DefaultGatherer)))
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	webui := webui.NewHandler(
		store, sessionStore, slog.Default(),
		webui.WithResultsPageSize(conf.Results.PageSize),
		webui.WithSessionName(conf.HTTP.Session.Name),
	)
	options = append(options, http.WithMount("/", webui))

	server := http.NewServer(options...)

	return server, nil
}

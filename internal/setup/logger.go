package setup

import (
	"io"
	"log/slog"

	"github.com/bornholm/feedback/internal/config"
	"github.com/bornholm/feedback/internal/slogx"
)

// NewLoggerFromConfig returns a logger carrying the attributes
// stored in the context of each record
func NewLoggerFromConfig(conf *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     conf.Logger.Level,
		AddSource: conf.Logger.Level == slog.LevelDebug,
	}

	var handler slog.Handler
	if conf.Logger.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(slogx.ContextHandler{Handler: handler})
}

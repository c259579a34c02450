package slogx

import (
	"bytes"
	"log/slog"
	"testing"
)

// TestWriter forwards each written line to the test output
type TestWriter struct {
	t testing.TB
}

func (w *TestWriter) Write(p []byte) (int, error) {
	w.t.Helper()

	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		w.t.Log(string(line))
	}

	return len(p), nil
}

func NewTestWriter(t testing.TB) *TestWriter {
	return &TestWriter{t: t}
}

// NewTestLogger returns a logger writing to the test output without
// timestamps, at debug level unless another level is given
func NewTestLogger(t testing.TB, level ...slog.Level) *slog.Logger {
	t.Helper()

	minLevel := slog.LevelDebug
	if len(level) > 0 {
		minLevel = level[0]
	}

	opts := &slog.HandlerOptions{
		Level: minLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(ContextHandler{
		Handler: slog.NewTextHandler(NewTestWriter(t), opts),
	})
}

package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"

	httpCtx "github.com/bornholm/feedback/internal/http/context"
	"github.com/bornholm/feedback/internal/slogx"
)

type Server struct {
	opts *Options
}

// Handler returns the root handler of the server with its middlewares
func (s *Server) Handler() http.Handler {
	mux := &http.ServeMux{}
	for mountpoint, handler := range s.opts.Mounts {
		mount(mux, mountpoint, handler)
	}

	handler := s.contextMiddleware(mux)
	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(s.opts.Logger, sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})(handler)

	return handler
}

func (s *Server) contextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ctx = httpCtx.SetBaseURL(ctx, s.opts.BaseURL)
		ctx = httpCtx.SetCurrentURL(ctx, r.URL)

		if requestID := sloghttp.GetRequestID(r); requestID != "" {
			ctx = slogx.WithAttrs(ctx, slog.String("request_id", requestID))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := http.Server{
		Addr:              s.opts.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.Timeouts.ReadHeader,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.Timeouts.Shutdown)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "could not shutdown server", slogx.Error(errors.WithStack(err)))
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}

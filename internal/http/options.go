package http

import (
	"log/slog"
	"net/http"
	"time"
)

type Options struct {
	Address  string
	BaseURL  string
	Mounts   map[string]http.Handler
	Logger   *slog.Logger
	Timeouts Timeouts
}

// Timeouts bound the lifecycle of the underlying http.Server
type Timeouts struct {
	ReadHeader time.Duration
	Shutdown   time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address: ":3002",
		BaseURL: "/",
		Mounts:  map[string]http.Handler{},
		Logger:  slog.Default(),
		Timeouts: Timeouts{
			ReadHeader: 10 * time.Second,
			Shutdown:   5 * time.Second,
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithMount serves handler under prefix, stripped from the request path
func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) { opts.BaseURL = baseURL }
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) { opts.Address = addr }
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) { opts.Logger = logger }
}

// WithTimeouts overrides the non zero timeouts of t
func WithTimeouts(t Timeouts) OptionFunc {
	return func(opts *Options) {
		if t.ReadHeader > 0 {
			opts.Timeouts.ReadHeader = t.ReadHeader
		}
		if t.Shutdown > 0 {
			opts.Timeouts.Shutdown = t.Shutdown
		}
	}
}

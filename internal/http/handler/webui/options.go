package webui

type Options struct {
	ResultsPageSize int
	SessionName     string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		ResultsPageSize: 20,
		SessionName:     "feedback",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithResultsPageSize(size int) OptionFunc {
	return func(opts *Options) {
		opts.ResultsPageSize = size
	}
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

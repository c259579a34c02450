package feedback

type Options struct {
	// PageSize is the number of reviews listed per results page
	PageSize    int
	SessionName string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		PageSize:    20,
		SessionName: "feedback",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithPageSize(pageSize int) OptionFunc {
	return func(opts *Options) {
		if pageSize > 0 {
			opts.PageSize = pageSize
		}
	}
}

func WithSessionName(name string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = name
	}
}

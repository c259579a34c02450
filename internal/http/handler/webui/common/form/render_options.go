package form

import "strconv"

// RenderOptions are presentation-only hints. They never change how a field
// is bound to its value and error.
type RenderOptions struct {
	Size        string
	Rows        int
	FullWidth   bool
	Class       string
	Attributes  map[string]string
	ChoiceLabel func(choice int) string
}

type RenderOptionFunc func(opts *RenderOptions)

func NewRenderOptions(funcs ...RenderOptionFunc) *RenderOptions {
	opts := &RenderOptions{
		Size:        "medium",
		Rows:        4,
		Attributes:  map[string]string{},
		ChoiceLabel: defaultChoiceLabel,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSize(size string) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.Size = size
	}
}

func WithRows(rows int) RenderOptionFunc {
	return func(opts *RenderOptions) {
		if rows > 0 {
			opts.Rows = rows
		}
	}
}

func WithFullWidth() RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.FullWidth = true
	}
}

func WithClass(class string) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.Class = class
	}
}

func WithAttributes(attrs map[string]string) RenderOptionFunc {
	return func(opts *RenderOptions) {
		for k, v := range attrs {
			opts.Attributes[k] = v
		}
	}
}

// WithChoiceLabel sets the accessible label of each rating choice
func WithChoiceLabel(fn func(choice int) string) RenderOptionFunc {
	return func(opts *RenderOptions) {
		if fn != nil {
			opts.ChoiceLabel = fn
		}
	}
}

func defaultChoiceLabel(choice int) string {
	if choice == 1 {
		return "1 Star"
	}
	return strconv.Itoa(choice) + " Stars"
}

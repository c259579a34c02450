package form

import (
	"github.com/a-h/templ"
)

// Kind is the rendering variant of a field
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindRating   Kind = "rating"
)

// Kinds returns the closed set of supported field kinds
func Kinds() []Kind {
	return []Kind{KindText, KindTextarea, KindRating}
}

func (k Kind) Valid() bool {
	switch k {
	case KindText, KindTextarea, KindRating:
		return true
	default:
		return false
	}
}

// ValidateFunc returns a human readable message when the value is invalid,
// or an empty string otherwise. It must accept empty values.
type ValidateFunc func(value string) string

// Field declares a form field
type Field struct {
	Name        string
	Kind        Kind
	Label       string
	Validate    ValidateFunc
	Placeholder string
	Attributes  map[string]string
}

// FieldContext contains all information needed to render a form field
type FieldContext struct {
	Name        string
	Kind        Kind
	Label       string
	Value       string
	Error       string
	Placeholder string
	Attributes  map[string]string
	Options     *RenderOptions
}

func (c FieldContext) HasError() bool {
	return c.Error != ""
}

func (c FieldContext) InputID() string {
	return "field-" + c.Name
}

func (c FieldContext) ErrorID() string {
	return c.Name + "-error"
}

// FieldRenderer describes a component that can render a single field
type FieldRenderer interface {
	RenderField(ctx FieldContext) (templ.Component, error)
}

package form

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// Lookup gives layouts access to the rendered fields of a form
type Lookup interface {
	Field(name string, funcs ...RenderOptionFunc) templ.Component
}

// LayoutFunc builds the content of a form from its fields
type LayoutFunc func(fields Lookup) templ.Component

// View describes the chrome of a rendered form
type View struct {
	AccessibilityLabel string
	Title              string
	Action             string
	// FieldEndpoint is the URL prefix receiving single field events
	FieldEndpoint string
	SubmitLabel   string
}

type formVModel struct {
	View
	Children template.HTML
}

// Render returns the form element with its fields laid out by layout.
// A nil layout renders every field in declaration order.
func (f *Form) Render(view View, layout LayoutFunc) templ.Component {
	if view.SubmitLabel == "" {
		view.SubmitLabel = "Submit"
	}

	if layout == nil {
		layout = f.defaultLayout
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children, err := templ.ToGoHTML(ctx, layout(fieldLookup{form: f}))
		if err != nil {
			return errors.WithStack(err)
		}

		vmodel := formVModel{
			View:     view,
			Children: children,
		}

		if err := templates.ExecuteTemplate(w, "form.html", vmodel); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}

// RenderField renders a specific field using the configured renderer
func (f *Form) RenderField(fieldName string, funcs ...RenderOptionFunc) (templ.Component, error) {
	ctx, err := f.GetFieldContext(fieldName, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	renderer := f.findRenderer(fieldName, ctx.Kind)

	component, err := renderer.RenderField(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return component, nil
}

func (f *Form) defaultLayout(fields Lookup) templ.Component {
	names := f.config.Names()
	components := make([]templ.Component, len(names))
	for i, name := range names {
		components[i] = fields.Field(name)
	}

	return templ.Join(components...)
}

// findRenderer finds the appropriate renderer for a field
func (f *Form) findRenderer(fieldName string, kind Kind) FieldRenderer {
	// Check for field-specific renderer
	if renderer, exists := f.options.FieldRenderers[fieldName]; exists {
		return renderer
	}

	// Check for kind-specific renderer
	if renderer, exists := f.options.FieldRenderers[string(kind)]; exists {
		return renderer
	}

	// Fall back to default renderer
	return f.options.DefaultRenderer
}

type fieldLookup struct {
	form *Form
}

// Field implements Lookup. Rendering the returned component fails when the
// field cannot be rendered.
func (l fieldLookup) Field(name string, funcs ...RenderOptionFunc) templ.Component {
	component, err := l.form.RenderField(name, funcs...)
	if err != nil {
		return failingComponent(err)
	}

	return component
}

var _ Lookup = fieldLookup{}

func failingComponent(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return err
	})
}

// FieldState is the serializable state of a single field
type FieldState struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Error string `json:"error"`
}

func (f *Form) FieldState(name string) (FieldState, error) {
	if !f.config.Has(name) {
		return FieldState{}, errors.Wrapf(ErrUnknownField, "field '%s'", name)
	}

	return FieldState{
		Name:  name,
		Value: f.values[name],
		Error: f.errors[name],
	}, nil
}

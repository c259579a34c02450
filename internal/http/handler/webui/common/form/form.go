package form

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/pkg/errors"
)

// Values maps field names to their current raw value
type Values map[string]string

// Errors maps field names to their current error message.
// An empty message means the field has no error.
type Errors map[string]string

// HasAny reports whether at least one field carries an error message
func (e Errors) HasAny() bool {
	for _, message := range e {
		if message != "" {
			return true
		}
	}
	return false
}

// SubmitFunc receives the values of a fully valid form
type SubmitFunc func(ctx context.Context, values Values) error

// Form holds the values and errors of one form instance.
// It is not safe for concurrent use.
type Form struct {
	config  *Config
	values  Values
	errors  Errors
	options *FormOptions
}

// New creates a form for the given configuration with an empty value
// and no error for every field
func New(config *Config, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		config:  config,
		values:  make(Values, config.Len()),
		errors:  make(Errors, config.Len()),
		options: options,
	}

	for _, name := range config.Names() {
		form.values[name] = ""
		form.errors[name] = ""
	}

	return form
}

func (f *Form) Config() *Config {
	return f.config
}

// SetValue updates the value of a field and clears its error.
// Unknown fields are ignored.
func (f *Form) SetValue(name string, value string) {
	if !f.config.Has(name) {
		f.options.Logger.Debug("ignoring value of unknown field", slog.String("field", name))
		return
	}

	f.values[name] = value
	f.errors[name] = ""
}

// ValidateField runs the validator of a field against its current value
// and stores the resulting message
func (f *Form) ValidateField(name string) {
	field, exists := f.config.Field(name)
	if !exists {
		f.options.Logger.Debug("ignoring validation of unknown field", slog.String("field", name))
		return
	}

	f.errors[name] = field.Validate(f.values[name])
}

// ValidateAll validates every field, replaces the whole error mapping with
// the result and reports whether any field has an error
func (f *Form) ValidateAll() bool {
	errs := make(Errors, f.config.Len())
	hasErrors := false

	for _, field := range f.config.fields {
		message := field.Validate(f.values[field.Name])
		if message != "" {
			hasErrors = true
		}
		errs[field.Name] = message
	}

	f.errors = errs

	return hasErrors
}

// Submit validates the whole form and, when no field has an error, invokes
// onSubmit with a snapshot of the values. It reports whether the submission
// was accepted along with the error returned by onSubmit.
func (f *Form) Submit(ctx context.Context, onSubmit SubmitFunc) (bool, error) {
	if hasErrors := f.ValidateAll(); hasErrors {
		return false, nil
	}

	if err := onSubmit(ctx, f.Values()); err != nil {
		return true, errors.WithStack(err)
	}

	return true, nil
}

// Event is a user interaction on a single field
type Event string

const (
	EventChange Event = "change"
	EventBlur   Event = "blur"
)

var ErrUnknownEvent = errors.New("unknown event")

// Dispatch applies a field interaction: a change updates the value,
// a blur validates the field
func (f *Form) Dispatch(event Event, name string, value string) error {
	if !f.config.Has(name) {
		return errors.Wrapf(ErrUnknownField, "field '%s'", name)
	}

	switch event {
	case EventChange:
		f.SetValue(name, value)
	case EventBlur:
		f.ValidateField(name)
	default:
		return errors.Wrapf(ErrUnknownEvent, "event '%s'", event)
	}

	return nil
}

// Handle loads the values of the configured fields found in the request body
func (f *Form) Handle(r *http.Request) error {
	if isMultipart(r) {
		if err := r.ParseMultipartForm(f.options.MaxMemory); err != nil {
			return errors.Wrap(err, "failed to parse multipart form")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return errors.Wrap(err, "failed to parse form")
		}
	}

	for _, name := range f.config.Names() {
		if _, exists := r.PostForm[name]; !exists {
			continue
		}

		f.SetValue(name, r.PostForm.Get(name))
	}

	return nil
}

func (f *Form) Value(name string) string {
	return f.values[name]
}

func (f *Form) Error(name string) string {
	return f.errors[name]
}

// Values returns a copy of the current values
func (f *Form) Values() Values {
	values := make(Values, len(f.values))
	for k, v := range f.values {
		values[k] = v
	}
	return values
}

// Errors returns a copy of the current errors
func (f *Form) Errors() Errors {
	errs := make(Errors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return errs
}

// GetFieldContext returns the rendering context for a specific field
func (f *Form) GetFieldContext(fieldName string, funcs ...RenderOptionFunc) (FieldContext, error) {
	field, exists := f.config.Field(fieldName)
	if !exists {
		return FieldContext{}, errors.Wrapf(ErrUnknownField, "field '%s'", fieldName)
	}

	ctx := FieldContext{
		Name:        field.Name,
		Kind:        field.Kind,
		Label:       field.Label,
		Value:       f.values[field.Name],
		Error:       f.errors[field.Name],
		Placeholder: field.Placeholder,
		Attributes:  field.Attributes,
		Options:     NewRenderOptions(funcs...),
	}

	return ctx, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "multipart/form-data"
}

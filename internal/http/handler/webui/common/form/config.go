package form

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownKind      = errors.New("unknown field kind")
	ErrUnknownField     = errors.New("unknown field")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrMissingValidator = errors.New("missing validator")
	ErrMissingName      = errors.New("missing field name")
)

// Config is the immutable, ordered set of fields of a form
type Config struct {
	fields []Field
	index  map[string]int
}

// NewConfig checks the given fields and returns the matching configuration.
// Field order is kept and used as the default rendering order.
func NewConfig(fields ...Field) (*Config, error) {
	config := &Config{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, errors.WithStack(ErrMissingName)
		}

		if _, exists := config.index[name]; exists {
			return nil, errors.Wrapf(ErrDuplicateField, "field '%s'", name)
		}

		if !field.Kind.Valid() {
			return nil, errors.Wrapf(ErrUnknownKind, "field '%s' has kind '%s'", name, field.Kind)
		}

		if field.Validate == nil {
			return nil, errors.Wrapf(ErrMissingValidator, "field '%s'", name)
		}

		field.Name = name
		field.Attributes = cloneAttributes(field.Attributes)

		config.index[name] = len(config.fields)
		config.fields = append(config.fields, field)
	}

	return config, nil
}

// MustConfig is like NewConfig but panics on invalid configuration
func MustConfig(fields ...Field) *Config {
	config, err := NewConfig(fields...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return config
}

// Names returns all field names, in declaration order
func (c *Config) Names() []string {
	names := make([]string, len(c.fields))
	for i, field := range c.fields {
		names[i] = field.Name
	}
	return names
}

func (c *Config) Field(name string) (Field, bool) {
	idx, exists := c.index[name]
	if !exists {
		return Field{}, false
	}

	return c.fields[idx], true
}

func (c *Config) Has(name string) bool {
	_, exists := c.index[name]
	return exists
}

func (c *Config) Len() int {
	return len(c.fields)
}

func cloneAttributes(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}

	cloned := make(map[string]string, len(attrs))
	for k, v := range attrs {
		cloned[k] = v
	}

	return cloned
}

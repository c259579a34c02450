package form

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition is the declarative description of a form configuration
type Definition struct {
	Fields []FieldDefinition `yaml:"fields"`
}

type FieldDefinition struct {
	Name        string            `yaml:"name"`
	Kind        Kind              `yaml:"kind"`
	Label       string            `yaml:"label"`
	Placeholder string            `yaml:"placeholder,omitempty"`
	Attributes  map[string]string `yaml:"attributes,omitempty"`
	Rules       []RuleDefinition  `yaml:"rules"`
}

// RuleDefinition describes one validation rule. Exactly one of the rule
// entries is expected to be set.
type RuleDefinition struct {
	Required *RequiredRule `yaml:"required,omitempty"`
	Length   *LengthRule   `yaml:"length,omitempty"`
	Email    *EmailRule    `yaml:"email,omitempty"`
	OneOf    *OneOfRule    `yaml:"one_of,omitempty"`
}

var ErrInvalidRule = errors.New("invalid rule")

func (d RuleDefinition) Rule() (ValidationRule, error) {
	var (
		rule  ValidationRule
		count int
	)

	if d.Required != nil {
		rule = *d.Required
		count++
	}
	if d.Length != nil {
		rule = *d.Length
		count++
	}
	if d.Email != nil {
		rule = *d.Email
		count++
	}
	if d.OneOf != nil {
		rule = *d.OneOf
		count++
	}

	if count != 1 {
		return nil, errors.Wrapf(ErrInvalidRule, "expected exactly one rule, got %d", count)
	}

	return rule, nil
}

// Config builds the form configuration described by the definition
func (d Definition) Config() (*Config, error) {
	fields := make([]Field, 0, len(d.Fields))

	for _, fd := range d.Fields {
		rules := make([]ValidationRule, 0, len(fd.Rules))
		for i, rd := range fd.Rules {
			rule, err := rd.Rule()
			if err != nil {
				return nil, errors.Wrapf(err, "field '%s', rule #%d", fd.Name, i)
			}
			rules = append(rules, rule)
		}

		fields = append(fields, Field{
			Name:        fd.Name,
			Kind:        fd.Kind,
			Label:       fd.Label,
			Placeholder: fd.Placeholder,
			Attributes:  fd.Attributes,
			Validate:    Rules(rules...),
		})
	}

	config, err := NewConfig(fields...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return config, nil
}

// LoadDefinition parses a YAML form definition and returns its configuration
func LoadDefinition(r io.Reader) (*Config, error) {
	var definition Definition

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&definition); err != nil {
		return nil, errors.Wrap(err, "could not decode form definition")
	}

	config, err := definition.Config()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return config, nil
}

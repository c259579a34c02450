package form

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

// ValidationRule represents a single check applied to a raw field value
type ValidationRule interface {
	Validate(value string) error
}

// Rules combines the given rules into a field validator.
// The message of the first failing rule is reported.
func Rules(rules ...ValidationRule) ValidateFunc {
	return func(value string) string {
		for _, rule := range rules {
			if err := rule.Validate(value); err != nil {
				return err.Error()
			}
		}

		return ""
	}
}

// Func adapts a plain function to the ValidationRule interface
type Func func(value string) error

var _ ValidationRule = Func(nil)

func (fn Func) Validate(value string) error {
	return fn(value)
}

// RequiredRule validates that a field is not blank
type RequiredRule struct {
	Message string `yaml:"message"`
}

var _ ValidationRule = RequiredRule{}

func (r RequiredRule) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return newRuleError(r.Message, "this field is required")
	}

	return nil
}

// LengthRule validates the number of characters of a value.
// A zero Max means no upper bound.
type LengthRule struct {
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
	Message string `yaml:"message"`
}

var _ ValidationRule = LengthRule{}

func (r LengthRule) Validate(value string) error {
	length := utf8.RuneCountInString(value)

	if length < r.Min {
		return newRuleError(r.Message, "minimum length is "+strconv.Itoa(r.Min)+" characters")
	}

	if r.Max > 0 && length > r.Max {
		return newRuleError(r.Message, "maximum length is "+strconv.Itoa(r.Max)+" characters")
	}

	return nil
}

// EmailRule validates that a value is a well formed email address
type EmailRule struct {
	Message string `yaml:"message"`
}

var _ ValidationRule = EmailRule{}

func (r EmailRule) Validate(value string) error {
	if !govalidator.IsEmail(value) {
		return newRuleError(r.Message, "must be a valid email address")
	}

	return nil
}

// OneOfRule validates that a value belongs to an allowed set
type OneOfRule struct {
	Values  []string `yaml:"values"`
	Message string   `yaml:"message"`
}

var _ ValidationRule = OneOfRule{}

func (r OneOfRule) Validate(value string) error {
	if !govalidator.IsIn(value, r.Values...) {
		return newRuleError(r.Message, "must be one of "+strings.Join(r.Values, ", "))
	}

	return nil
}

func newRuleError(message string, fallback string) error {
	if message == "" {
		message = fallback
	}

	return errors.New(message)
}

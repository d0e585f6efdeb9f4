// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"locinsight/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request DTOs.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds a validator that reports fields by their wire names.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(key), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return ""
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors lists "field: tag" pairs of a validation failure, or nil when err carries none.
func FieldErrors(err error) []string {
	validationErrs, ok := errors.AsType[playground.ValidationErrors](err)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, fe.Field()+": "+fe.Tag())
	}

	return out
}

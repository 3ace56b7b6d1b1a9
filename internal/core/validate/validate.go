// Package validate wraps go-playground/validator for use inside domain
// actions. Actions validate their inputs before touching the guard or the
// store, and report failures as per-field error maps in the envelope.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// Key field errors by the json tag so the envelope speaks the wire
	// vocabulary, not Go field names.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// Struct validates in and returns a non-nil field-error map when validation
// fails. A nil map means the input is valid. Non-validation errors (bad
// usage of the validator itself) are folded into a single "_" entry rather
// than panicking mid-request.
func Struct(in any) map[string][]string {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}

	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fieldError(fe))
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

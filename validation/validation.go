// Package validation contains the logic for validating caller input.
//
// It uses the `validator` library to enforce rules (like minimum page
// numbers) defined in struct tags and extracts validation errors into
// a format the caller can act on.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Haukuraj/sqlverk/errs"
)

var validate = validator.New()

// Struct validates v against its validator tags.
//
// On failure it returns an errs validation error carrying one
// FieldError per failing field; on success it returns nil.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	msg, fieldErrors := ExtractFieldErrors(err)
	return errs.NewValidationError(msg, nil, fieldErrors)
}

// ExtractFieldErrors converts a validator error into user-friendly
// per-field messages.
func ExtractFieldErrors(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min", "gte":
			// For strings the param is a length, for numbers a value.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max", "lte":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}

package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"required_if": "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be at most {param}",
	"min":         "{field} must be at least {param}",
	"len":         "{field} must be exactly {param} characters long",
	"email":       "{field} must be a valid email address",
	"e164":        "{field} must be a phone number in international format",
	"money":       "{field} must be a positive amount with at most two decimal places",
	"latitude":    "{field} must be a valid latitude",
	"longitude":   "{field} must be a valid longitude",
	"uuid4":       "{field} must be a valid id",
	"numeric":     "{field} must contain digits only",
}

// message describes the first violation that has a template, falling back to the raw error.
func message(err error) string {
	var violations val.ValidationErrors
	if !errors.As(err, &violations) {
		return err.Error()
	}

	for _, violation := range violations {
		template, ok := messages[violation.Tag()]
		if !ok {
			continue
		}

		field := violation.Field()
		if field == "" {
			field = "value"
		}

		return strings.NewReplacer("{field}", field, "{param}", violation.Param()).Replace(template)
	}

	return violations.Error()
}

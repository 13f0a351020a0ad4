package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared request validator instance.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationMessages flattens validator errors into a field -> message map.
func ValidationMessages(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request!"
		return errors
	}

	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			errors[fe.Field()] = "This field is required!"
		case "oneof":
			errors[fe.Field()] = "Must be one of: " + fe.Param() + "!"
		case "min":
			errors[fe.Field()] = "Must be at least " + fe.Param() + "!"
		case "max":
			errors[fe.Field()] = "Must be at most " + fe.Param() + "!"
		case "gtfield":
			errors[fe.Field()] = "Must be after " + fe.Param() + "!"
		case "uuid":
			errors[fe.Field()] = "Must be a valid UUID!"
		default:
			errors[fe.Field()] = "Invalid value!"
		}
	}
	return errors
}

package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator global untuk DTO (struct tag validate:"...").
var Validate = validator.New()

// ValidatorErrorMap meratakan validator.ValidationErrors jadi field → pesan
// sederhana, supaya bentuknya sama dengan error dari helper/schema.
func ValidatorErrorMap(err error) map[string]string {
	out := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = "invalid input"
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "required"
		case "min":
			out[field] = "too short (min " + fe.Param() + ")"
		case "max":
			out[field] = "too long (max " + fe.Param() + ")"
		case "email":
			out[field] = "invalid email"
		case "oneof":
			out[field] = "must be one of: " + fe.Param()
		case "gt":
			out[field] = "must be greater than " + fe.Param()
		case "gte":
			out[field] = "must be >= " + fe.Param()
		default:
			out[field] = fe.Tag()
		}
	}
	return out
}

package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/crewcal/pkg/util/errorutil"
)

var validate = validator.New()

// Validate runs struct-tag validation and converts failures into the
// standard validation error shape.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	details := map[string]any{}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
	}
	return errorutil.NewValidationError("invalid payload", details)
}

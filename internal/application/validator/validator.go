package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts go-playground/validator to echo.Validator
type EchoValidator struct {
	validate *validator.Validate
}

func NewEchoValidator() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FirstInvalidValue returns the offending value of the first failed field, or "" when err is not a validation error
func FirstInvalidValue(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return ""
	}
	if value, ok := validationErrors[0].Value().(string); ok {
		return value
	}
	return ""
}

package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into a
// request-level validation error.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		appErr := NewValidationError("Invalid request payload.")
		appErr.Err = err
		return appErr
	}
	return nil
}

package serverutils

import "github.com/gofiber/fiber/v2"

// AppError pairs a fixed user-facing message with a server-side cause.
// The cause only ever reaches the diagnostic log, never the response body.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewAuthenticationError(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NewCollaboratorError(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusBadGateway, Message: message, Err: err}
}

func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusServiceUnavailable, Message: message, Err: err}
}

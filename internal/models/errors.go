package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError. Handlers map these onto HTTP statuses.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// AppError is a typed application error carrying a machine-readable code and
// a client-safe message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports that no record of the given kind matched the
// requested id.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// NewValidationError reports a rejected input: a missing required field, a
// length or format violation, or a uniqueness conflict.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewInternalError wraps an unexpected fault, typically a store connectivity
// failure.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsNotFound reports whether err is an AppError with the NOT_FOUND code.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeNotFound
}

// IsValidation reports whether err is an AppError with the VALIDATION_ERROR code.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeValidation
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	message := err.Error()
	var appErr *AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	return c.Status(status).JSON(ErrorResponse{Message: message})
}

package types

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error type tags carried in error responses.
const (
	TypeValidation      = "validation"
	TypeNotFound        = "not_found"
	TypeNotAllowed      = "not_allowed"
	TypeUnauthenticated = "unauthenticated"
	TypeConflict        = "conflict"
)

// DomainError is the one recoverable error shape handlers surface. The global
// error handler maps Code onto the HTTP status and Reasons onto the structured
// errors list for validation failures.
type DomainError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Reasons []string `json:"reasons,omitempty"`
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidation builds a 400 error with human-readable reasons.
func NewValidation(reasons ...string) *DomainError {
	return &DomainError{
		Code:    fiber.StatusBadRequest,
		Message: "Request validation failed",
		Type:    TypeValidation,
		Reasons: reasons,
	}
}

// NewNotFound builds a 404 error. It also covers records the caller is not
// permitted to see, so existence of private records never leaks.
func NewNotFound(resource string) *DomainError {
	return &DomainError{
		Code:    fiber.StatusNotFound,
		Message: fmt.Sprintf("%s was not found", resource),
		Type:    TypeNotFound,
	}
}

// NewNotAllowed builds a 403 error for callers lacking mutation rights.
func NewNotAllowed() *DomainError {
	return &DomainError{
		Code:    fiber.StatusForbidden,
		Message: "The user does not have access",
		Type:    TypeNotAllowed,
	}
}

// NewUnauthenticated builds a 401 error.
func NewUnauthenticated() *DomainError {
	return &DomainError{
		Code:    fiber.StatusUnauthorized,
		Message: "The user is not recognized",
		Type:    TypeUnauthenticated,
	}
}

// NewConflict builds a 409 error for uniqueness violations.
func NewConflict(message string) *DomainError {
	return &DomainError{
		Code:    fiber.StatusConflict,
		Message: message,
		Type:    TypeConflict,
	}
}

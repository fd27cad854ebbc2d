package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// DomainErrorResponse renders a domain error, including the structured
// reasons list for validation failures.
func DomainErrorResponse(c *fiber.Ctx, derr *types.DomainError) error {
	body := fiber.Map{
		"status":    derr.Code,
		"message":   derr.Message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      derr.Type,
	}

	if len(derr.Reasons) > 0 {
		errs := make([]fiber.Map, 0, len(derr.Reasons))
		for _, reason := range derr.Reasons {
			errs = append(errs, fiber.Map{"reason": reason})
		}
		body["errors"] = errs
	}

	return c.Status(derr.Code).JSON(body)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/types"
	"github.com/mylanyard/server/internal/utils"
)

// ErrorHandler is the app-wide Fiber error handler. Domain errors carry their
// own status and type; anything else is a 500 with the detail kept out of the
// response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var derr *types.DomainError
	if errors.As(err, &derr) {
		return utils.DomainErrorResponse(c, derr)
	}

	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s: %v", c.OriginalURL(), err)
		message = "Internal Server Error"
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

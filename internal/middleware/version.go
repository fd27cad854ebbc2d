package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const localsAPIVersion = "apiVersion"

// VersionMiddleware resolves the X-Api-Version request header, stores it in
// the request context, and echoes it on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Support version aliases
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals(localsAPIVersion, version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// APIVersion returns the client API version resolved by VersionMiddleware.
func APIVersion(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsAPIVersion).(string); ok {
		return v
	}
	return "1.0.0"
}

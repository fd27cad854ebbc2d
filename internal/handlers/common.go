package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/types"
	"github.com/mylanyard/server/internal/validation"
)

// parseID reads a numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewValidation(name + " must be a numeric id")
	}
	return id, nil
}

// parseBody decodes the JSON body into out and validates it against its
// schema tags.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.NewValidation("request body must be valid JSON")
	}
	return validation.Struct(out)
}

// setTokenCookie stores the session token in an httpOnly cookie.
func setTokenCookie(c *fiber.Ctx, cfg *config.Config, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearTokenCookie expires the session cookie.
func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

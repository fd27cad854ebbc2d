package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/services"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

const (
	localsIdentity = "identity"
	localsUser     = "user"
)

// RequireUser validates the session cookie and loads the authenticated user
// into the request context. Requests without a valid session are rejected.
func RequireUser(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := restoreUser(c, cfg, db)
		if err != nil || user == nil {
			return types.NewUnauthenticated()
		}

		c.Locals(localsUser, user)
		c.Locals(localsIdentity, identity.User(user.ID))
		return c.Next()
	}
}

// OptionalUser loads the session user when a valid cookie is present and
// falls back to the anonymous identity otherwise. Used on routes that serve
// anonymous viewers (system assets, session restore).
func OptionalUser(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsIdentity, identity.Anonymous())

		if user, err := restoreUser(c, cfg, db); err == nil && user != nil {
			c.Locals(localsUser, user)
			c.Locals(localsIdentity, identity.User(user.ID))
		}

		return c.Next()
	}
}

func restoreUser(c *fiber.Ctx, cfg *config.Config, db *gorm.DB) (*models.User, error) {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return nil, nil
	}

	userID, err := services.ParseToken(cfg, token)
	if err != nil {
		return nil, err
	}

	return services.GetUser(db, userID)
}

// CurrentIdentity returns the viewer identity set by the auth middleware.
// Routes without auth middleware read as anonymous.
func CurrentIdentity(c *fiber.Ctx) identity.Identity {
	if id, ok := c.Locals(localsIdentity).(identity.Identity); ok {
		return id
	}
	return identity.Anonymous()
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(localsUser).(*models.User); ok {
		return user
	}
	return nil
}

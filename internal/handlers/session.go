package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// SessionHandler handles session routes
type SessionHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type loginInput struct {
	Credential string `json:"credential" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// Restore handles GET /api/session
// @Summary Restore the current session
// @Description Returns the session user when a valid cookie is present, null otherwise
// @Tags Session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func (h *SessionHandler) Restore(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusOK).JSON(nil)
	}

	// Refresh the cookie on restore, matching the login flow.
	token, err := services.IssueToken(h.Cfg, user)
	if err != nil {
		return err
	}
	setTokenCookie(c, h.Cfg, token)

	safe := user.Safe()
	return c.Status(fiber.StatusOK).JSON(sessionResponse{
		ID:        safe.ID,
		FirstName: safe.FirstName,
		LastName:  safe.LastName,
		Email:     safe.Email,
		Token:     token,
	})
}

// Login handles POST /api/session
// @Summary Sign in
// @Description Authenticates by email credential and password and sets the session cookie
// @Tags Session
// @Accept json
// @Produce json
// @Param body body loginInput true "Credentials"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /session [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := services.Login(h.DB, input.Credential, input.Password)
	if err != nil {
		return err
	}

	token, err := services.IssueToken(h.Cfg, user)
	if err != nil {
		return err
	}
	setTokenCookie(c, h.Cfg, token)

	safe := user.Safe()
	return c.Status(fiber.StatusOK).JSON(sessionResponse{
		ID:        safe.ID,
		FirstName: safe.FirstName,
		LastName:  safe.LastName,
		Email:     safe.Email,
		Token:     token,
	})
}

// Logout handles DELETE /api/session
// @Summary Sign out
// @Tags Session
// @Produce json
// @Success 200
// @Router /session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)
	return c.Status(fiber.StatusOK).JSON(nil)
}

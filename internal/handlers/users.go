package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/config"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// UserHandler handles user account routes
type UserHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Signup handles POST /api/users
// @Summary Create an account
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Account fields"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := services.Signup(h.DB, input)
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

// UpdateProfile handles PATCH /api/users
// @Summary Edit the current user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.ProfileInput true "Profile fields"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return types.NewUnauthenticated()
	}

	var input services.ProfileInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := services.UpdateProfile(h.DB, current.ID, input)
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

// ChangePassword handles PATCH /api/users/password
// @Summary Change the current user's password
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.PasswordInput true "Current and changed passwords"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /users/password [patch]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return types.NewUnauthenticated()
	}

	var input services.PasswordInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, err := services.ChangePassword(h.DB, current.ID, input)
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

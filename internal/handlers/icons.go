package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// IconHandler handles icon routes
type IconHandler struct {
	DB *gorm.DB
}

// Create handles POST /api/icons
// @Summary Create an icon
// @Tags Icons
// @Accept json
// @Produce json
// @Param body body services.IconInput true "Icon fields"
// @Success 201 {object} models.Icon
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /icons [post]
func (h *IconHandler) Create(c *fiber.Ctx) error {
	var input services.IconInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	icon, err := services.CreateIcon(h.DB, middleware.CurrentIdentity(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(icon)
}

// List handles GET /api/icons
// @Summary List icons visible to the caller
// @Tags Icons
// @Produce json
// @Success 200 {array} models.Icon
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /icons [get]
func (h *IconHandler) List(c *fiber.Ctx) error {
	icons, err := services.ListIcons(h.DB, middleware.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(icons)
}

// Get handles GET /api/icons/instance/:id
// @Summary Get one icon with its taggings
// @Tags Icons
// @Produce json
// @Param id path int true "Icon ID"
// @Success 200 {object} models.Icon
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /icons/instance/{id} [get]
func (h *IconHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	icon, err := services.GetIcon(h.DB, middleware.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(icon)
}

// Update handles PATCH /api/icons/instance/:id
// @Summary Edit an icon
// @Tags Icons
// @Accept json
// @Produce json
// @Param id path int true "Icon ID"
// @Param body body services.IconPatch true "Fields to change"
// @Success 200 {object} models.Icon
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /icons/instance/{id} [patch]
func (h *IconHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var patch services.IconPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	icon, err := services.UpdateIcon(h.DB, middleware.CurrentIdentity(c), id, patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(icon)
}

// Delete handles DELETE /api/icons/instance/:id
// @Summary Delete an icon and its dependent cards
// @Tags Icons
// @Produce json
// @Param id path int true "Icon ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /icons/instance/{id} [delete]
func (h *IconHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := services.DeleteIcon(h.DB, middleware.CurrentIdentity(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

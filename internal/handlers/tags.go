package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// TagHandler handles tag routes
type TagHandler struct {
	DB *gorm.DB
}

// Create handles POST /api/tags
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param body body services.TagInput true "Tag fields"
// @Success 201 {object} models.Tag
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var input services.TagInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	tag, err := services.CreateTag(h.DB, middleware.CurrentIdentity(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// List handles GET /api/tags
// @Summary List tags visible to the caller
// @Tags Tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := services.ListTags(h.DB, middleware.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// Get handles GET /api/tags/instance/:id
// @Summary Get one tag
// @Tags Tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tags/instance/{id} [get]
func (h *TagHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(h.DB, middleware.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

// Update handles PATCH /api/tags/instance/:id
// @Summary Rename a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param body body services.TagPatch true "Fields to change"
// @Success 200 {object} models.Tag
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /tags/instance/{id} [patch]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var patch services.TagPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	tag, err := services.UpdateTag(h.DB, middleware.CurrentIdentity(c), id, patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

// Delete handles DELETE /api/tags/instance/:id
// @Summary Delete a tag and its taggings
// @Tags Tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /tags/instance/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := services.DeleteTag(h.DB, middleware.CurrentIdentity(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

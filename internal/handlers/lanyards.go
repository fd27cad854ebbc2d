package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// LanyardHandler handles lanyard routes
type LanyardHandler struct {
	DB *gorm.DB
}

type assignCardsInput struct {
	CardIDs []uint64 `json:"cardIds"`
}

// Create handles POST /api/lanyards
// @Summary Create a lanyard
// @Tags Lanyards
// @Accept json
// @Produce json
// @Param body body services.LanyardInput true "Lanyard fields"
// @Success 201 {object} models.Lanyard
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /lanyards [post]
func (h *LanyardHandler) Create(c *fiber.Ctx) error {
	var input services.LanyardInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	lanyard, err := services.CreateLanyard(h.DB, middleware.CurrentIdentity(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(lanyard)
}

// List handles GET /api/lanyards
// @Summary List lanyards visible to the caller
// @Tags Lanyards
// @Produce json
// @Success 200 {array} models.Lanyard
// @Router /lanyards [get]
func (h *LanyardHandler) List(c *fiber.Ctx) error {
	lanyards, err := services.ListLanyards(h.DB, middleware.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyards)
}

// Get handles GET /api/lanyards/instance/:id
// @Summary Get one lanyard with its cards and taggings
// @Tags Lanyards
// @Produce json
// @Param id path int true "Lanyard ID"
// @Success 200 {object} models.Lanyard
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /lanyards/instance/{id} [get]
func (h *LanyardHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	lanyard, err := services.GetLanyard(h.DB, middleware.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyard)
}

// Update handles PATCH /api/lanyards/instance/:id
// @Summary Edit a lanyard
// @Tags Lanyards
// @Accept json
// @Produce json
// @Param id path int true "Lanyard ID"
// @Param body body services.LanyardPatch true "Fields to change"
// @Success 200 {object} models.Lanyard
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /lanyards/instance/{id} [patch]
func (h *LanyardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var patch services.LanyardPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	lanyard, err := services.UpdateLanyard(h.DB, middleware.CurrentIdentity(c), id, patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyard)
}

// Delete handles DELETE /api/lanyards/instance/:id
// @Summary Delete a lanyard, releasing its cards
// @Tags Lanyards
// @Produce json
// @Param id path int true "Lanyard ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /lanyards/instance/{id} [delete]
func (h *LanyardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := services.DeleteLanyard(h.DB, middleware.CurrentIdentity(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignCards handles PUT /api/lanyards/instance/:id/cards
// @Summary Replace the lanyard's card membership set
// @Description Cards in the list join the lanyard; member cards absent from the list are released
// @Tags Lanyards
// @Accept json
// @Produce json
// @Param id path int true "Lanyard ID"
// @Param body body assignCardsInput true "Replacement card id list"
// @Success 200 {object} models.Lanyard
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /lanyards/instance/{id}/cards [put]
func (h *LanyardHandler) AssignCards(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input assignCardsInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	viewer := middleware.CurrentIdentity(c)
	if err := services.AssignCardsToLanyard(h.DB, viewer, id, input.CardIDs); err != nil {
		return err
	}

	lanyard, err := services.GetLanyard(h.DB, viewer, id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyard)
}

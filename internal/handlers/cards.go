package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// CardHandler handles card routes
type CardHandler struct {
	DB *gorm.DB
}

// Create handles POST /api/cards
// @Summary Create a card
// @Tags Cards
// @Accept json
// @Produce json
// @Param body body services.CardInput true "Card fields"
// @Success 201 {object} models.Card
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards [post]
func (h *CardHandler) Create(c *fiber.Ctx) error {
	var input services.CardInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	card, err := services.CreateCard(h.DB, middleware.CurrentIdentity(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// List handles GET /api/cards
// @Summary List cards visible to the caller
// @Tags Cards
// @Produce json
// @Success 200 {array} models.Card
// @Router /cards [get]
func (h *CardHandler) List(c *fiber.Ctx) error {
	cards, err := services.ListCards(h.DB, middleware.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cards)
}

// Get handles GET /api/cards/instance/:id
// @Summary Get one card with its taggings
// @Tags Cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.Card
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/instance/{id} [get]
func (h *CardHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	card, err := services.GetCard(h.DB, middleware.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(card)
}

// Update handles PATCH /api/cards/instance/:id
// @Summary Edit a card
// @Tags Cards
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param body body services.CardPatch true "Fields to change"
// @Success 200 {object} models.Card
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/instance/{id} [patch]
func (h *CardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var patch services.CardPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	card, err := services.UpdateCard(h.DB, middleware.CurrentIdentity(c), id, patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(card)
}

// Delete handles DELETE /api/cards/instance/:id
// @Summary Delete a card
// @Tags Cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/instance/{id} [delete]
func (h *CardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := services.DeleteCard(h.DB, middleware.CurrentIdentity(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

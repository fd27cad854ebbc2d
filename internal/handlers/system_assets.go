package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// SystemAssetHandler serves the read-only system-owned asset routes. These
// take no session and answer the same for every caller: instance reads go
// through the policy getters with an anonymous viewer, which admits exactly
// the system-owned rows.
type SystemAssetHandler struct {
	DB *gorm.DB
}

// Icons handles GET /api/system-assets/icons
// @Summary List the stock icons
// @Tags System
// @Produce json
// @Success 200 {array} models.Icon
// @Router /system-assets/icons [get]
func (h *SystemAssetHandler) Icons(c *fiber.Ctx) error {
	icons, err := services.ListSystemIcons(h.DB)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(icons)
}

// Icon handles GET /api/system-assets/icons/instance/:id
// @Summary Get one stock icon with its taggings
// @Tags System
// @Produce json
// @Param id path int true "Icon ID"
// @Success 200 {object} models.Icon
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /system-assets/icons/instance/{id} [get]
func (h *SystemAssetHandler) Icon(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	icon, err := services.GetIcon(h.DB, identity.Anonymous(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(icon)
}

// Cards handles GET /api/system-assets/cards
// @Summary List the stock cards
// @Tags System
// @Produce json
// @Success 200 {array} models.Card
// @Router /system-assets/cards [get]
func (h *SystemAssetHandler) Cards(c *fiber.Ctx) error {
	cards, err := services.ListSystemCards(h.DB)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cards)
}

// Card handles GET /api/system-assets/cards/instance/:id
// @Summary Get one stock card with its taggings
// @Tags System
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.Card
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /system-assets/cards/instance/{id} [get]
func (h *SystemAssetHandler) Card(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	card, err := services.GetCard(h.DB, identity.Anonymous(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(card)
}

// Lanyards handles GET /api/system-assets/lanyards
// @Summary List the stock lanyards
// @Tags System
// @Produce json
// @Success 200 {array} models.Lanyard
// @Router /system-assets/lanyards [get]
func (h *SystemAssetHandler) Lanyards(c *fiber.Ctx) error {
	lanyards, err := services.ListSystemLanyards(h.DB)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyards)
}

// Lanyard handles GET /api/system-assets/lanyards/instance/:id
// @Summary Get one stock lanyard with its cards and taggings
// @Tags System
// @Produce json
// @Param id path int true "Lanyard ID"
// @Success 200 {object} models.Lanyard
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /system-assets/lanyards/instance/{id} [get]
func (h *SystemAssetHandler) Lanyard(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	lanyard, err := services.GetLanyard(h.DB, identity.Anonymous(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lanyard)
}

// Tags handles GET /api/system-assets/tags
// @Summary List the stock tags
// @Tags System
// @Produce json
// @Success 200 {array} models.Tag
// @Router /system-assets/tags [get]
func (h *SystemAssetHandler) Tags(c *fiber.Ctx) error {
	tags, err := services.ListSystemTags(h.DB)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tags)
}

// Tag handles GET /api/system-assets/tags/instance/:id
// @Summary Get one stock tag
// @Tags System
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /system-assets/tags/instance/{id} [get]
func (h *SystemAssetHandler) Tag(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tag, err := services.GetTag(h.DB, identity.Anonymous(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tag)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mylanyard/server/internal/middleware"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/services"
	"gorm.io/gorm"
)

// TaggingHandler handles the tagging routes mounted under each taggable
// entity group. Kind fixes which foreign key the routes operate on.
type TaggingHandler struct {
	DB   *gorm.DB
	Kind models.TargetKind
}

type createTaggingInput struct {
	InstanceID uint64 `json:"instanceId" validate:"required"`
}

type reconcileTaggingsInput struct {
	ToAdd    []uint64 `json:"toAdd"`
	ToRemove []uint64 `json:"toRemove"`
}

// RegisterTaggingRoutes mounts the tagging routes on an entity group. Every
// taggable entity gets the same surface: attach, list, get, list-for-instance,
// reconcile-for-instance, detach.
func RegisterTaggingRoutes(router fiber.Router, db *gorm.DB, kind models.TargetKind) {
	h := &TaggingHandler{DB: db, Kind: kind}

	router.Post("/tagging/:tagId", h.Create)
	router.Get("/taggings", h.List)
	router.Get("/tagging/:id", h.Get)
	router.Get("/instance/:id/taggings", h.ListForInstance)
	router.Put("/instance/:id/taggings", h.Reconcile)
	router.Delete("/tagging/:id", h.Delete)
}

// Create handles POST /api/{entity}/tagging/:tagId
// @Summary Attach a tag to an entity instance
// @Description Attaching an already-attached tag returns the existing tagging
// @Tags Taggings
// @Accept json
// @Produce json
// @Param tagId path int true "Tag ID"
// @Param body body createTaggingInput true "Target instance"
// @Success 201 {object} models.Tagging
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/tagging/{tagId} [post]
func (h *TaggingHandler) Create(c *fiber.Ctx) error {
	tagID, err := parseID(c, "tagId")
	if err != nil {
		return err
	}

	var input createTaggingInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	target := models.TaggingTarget{Kind: h.Kind, ID: input.InstanceID}
	tagging, err := services.CreateTagging(h.DB, middleware.CurrentIdentity(c), tagID, target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tagging)
}

// List handles GET /api/{entity}/taggings
// @Summary List taggings visible to the caller
// @Tags Taggings
// @Produce json
// @Success 200 {array} models.Tagging
// @Router /cards/taggings [get]
func (h *TaggingHandler) List(c *fiber.Ctx) error {
	taggings, err := services.ListTaggings(h.DB, middleware.CurrentIdentity(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(taggings)
}

// Get handles GET /api/{entity}/tagging/:id
// @Summary Get one tagging with its tag
// @Tags Taggings
// @Produce json
// @Param id path int true "Tagging ID"
// @Success 200 {object} models.Tagging
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/tagging/{id} [get]
func (h *TaggingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tagging, err := services.GetTagging(h.DB, middleware.CurrentIdentity(c), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tagging)
}

// ListForInstance handles GET /api/{entity}/instance/:id/taggings
// @Summary List the taggings attached to one entity instance
// @Tags Taggings
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {array} models.Tagging
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/instance/{id}/taggings [get]
func (h *TaggingHandler) ListForInstance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	target := models.TaggingTarget{Kind: h.Kind, ID: id}
	taggings, err := services.ListTaggingsForTarget(h.DB, middleware.CurrentIdentity(c), target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(taggings)
}

// Reconcile handles PUT /api/{entity}/instance/:id/taggings
// @Summary Adjust the tags attached to one entity instance
// @Description Tags in toAdd join the instance, tags in toRemove come off; system tags in either list are skipped
// @Tags Taggings
// @Accept json
// @Produce json
// @Param id path int true "Instance ID"
// @Param body body reconcileTaggingsInput true "Tag ids to attach and detach"
// @Success 200 {array} models.Tagging
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/instance/{id}/taggings [put]
func (h *TaggingHandler) Reconcile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input reconcileTaggingsInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	viewer := middleware.CurrentIdentity(c)
	target := models.TaggingTarget{Kind: h.Kind, ID: id}
	if err := services.ReconcileTaggings(h.DB, viewer, target, input.ToAdd, input.ToRemove); err != nil {
		return err
	}

	taggings, err := services.ListTaggingsForTarget(h.DB, viewer, target)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(taggings)
}

// Delete handles DELETE /api/{entity}/tagging/:id
// @Summary Detach a tagging
// @Tags Taggings
// @Produce json
// @Param id path int true "Tagging ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /cards/tagging/{id} [delete]
func (h *TaggingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := services.RemoveTagging(h.DB, middleware.CurrentIdentity(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package services

import (
	"errors"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// LanyardInput is the payload for lanyard creation.
type LanyardInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// LanyardPatch carries partial-field edits; nil fields are left untouched.
type LanyardPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// CreateLanyard persists a new lanyard owned by viewer.
func CreateLanyard(db *gorm.DB, viewer identity.Identity, input LanyardInput) (*models.Lanyard, error) {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return nil, err
	}

	lanyard := models.Lanyard{
		Name:        input.Name,
		Description: input.Description,
		AuthorID:    authorID,
	}
	if err := db.Create(&lanyard).Error; err != nil {
		return nil, err
	}
	return &lanyard, nil
}

// ListLanyards returns lanyards visible to viewer with their taggings.
func ListLanyards(db *gorm.DB, viewer identity.Identity) ([]models.Lanyard, error) {
	var lanyards []models.Lanyard
	err := db.Scopes(policy.VisibilityScope(viewer)).
		Preload("Taggings").
		Find(&lanyards).Error
	return lanyards, err
}

// GetLanyard loads a lanyard visible to viewer with its cards, taggings, and
// tags.
func GetLanyard(db *gorm.DB, viewer identity.Identity, id uint64) (*models.Lanyard, error) {
	var lanyard models.Lanyard
	err := db.Preload("Cards").
		Preload("Taggings").
		Preload("Taggings.Tag").
		First(&lanyard, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Lanyard")
		}
		return nil, err
	}
	if err := viewGate(viewer, lanyard.AuthorID, "Lanyard"); err != nil {
		return nil, err
	}
	return &lanyard, nil
}

// UpdateLanyard applies a partial edit to a lanyard owned by viewer.
func UpdateLanyard(db *gorm.DB, viewer identity.Identity, id uint64, patch LanyardPatch) (*models.Lanyard, error) {
	lanyard, err := GetLanyard(db, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := mutateGate(viewer, lanyard.AuthorID, "Lanyard"); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if len(values) == 0 {
		return lanyard, nil
	}

	if err := db.Model(lanyard).Updates(values).Error; err != nil {
		return nil, err
	}
	return lanyard, nil
}

// DeleteLanyard removes a lanyard owned by viewer. Member cards survive with
// their lanyard reference cleared; the lanyard's taggings are removed.
func DeleteLanyard(db *gorm.DB, viewer identity.Identity, id uint64) error {
	var lanyard models.Lanyard
	if err := db.First(&lanyard, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Lanyard")
		}
		return err
	}
	if err := mutateGate(viewer, lanyard.AuthorID, "Lanyard"); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Card{}).
			Where("lanyard_id = ?", lanyard.ID).
			Update("lanyard_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("lanyard_id = ?", lanyard.ID).Delete(&models.Tagging{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lanyard).Error
	})
}

// AssignCardsToLanyard replaces the lanyard's membership set with cardIDs.
// Cards in the list owned by viewer point at the lanyard afterwards; member
// cards absent from the list have their reference cleared. Cards the viewer
// does not own are skipped, so membership never crosses authors.
func AssignCardsToLanyard(db *gorm.DB, viewer identity.Identity, lanyardID uint64, cardIDs []uint64) error {
	var lanyard models.Lanyard
	if err := db.First(&lanyard, lanyardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Lanyard")
		}
		return err
	}
	if err := mutateGate(viewer, lanyard.AuthorID, "Lanyard"); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(cardIDs) > 0 {
			if err := tx.Model(&models.Card{}).
				Where("id IN ? AND author_id = ?", cardIDs, lanyard.AuthorID).
				Update("lanyard_id", lanyard.ID).Error; err != nil {
				return err
			}
		}

		clear := tx.Model(&models.Card{}).Where("lanyard_id = ?", lanyard.ID)
		if len(cardIDs) > 0 {
			clear = clear.Where("id NOT IN ?", cardIDs)
		}
		return clear.Update("lanyard_id", nil).Error
	})
}

package services

import (
	"errors"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// IconInput is the payload for icon creation.
type IconInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	ImageURL string `json:"imageUrl" validate:"required,url,max=2048"`
}

// IconPatch carries partial-field edits; nil fields are left untouched.
type IconPatch struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url,max=2048"`
}

// CreateIcon persists a new icon owned by viewer.
func CreateIcon(db *gorm.DB, viewer identity.Identity, input IconInput) (*models.Icon, error) {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return nil, err
	}

	icon := models.Icon{
		Name:     input.Name,
		ImageURL: input.ImageURL,
		AuthorID: authorID,
	}
	if err := db.Create(&icon).Error; err != nil {
		return nil, err
	}
	return &icon, nil
}

// ListIcons returns icons visible to viewer with their taggings.
func ListIcons(db *gorm.DB, viewer identity.Identity) ([]models.Icon, error) {
	var icons []models.Icon
	err := db.Scopes(policy.VisibilityScope(viewer)).
		Preload("Taggings").
		Find(&icons).Error
	return icons, err
}

// GetIcon loads an icon visible to viewer, taggings and tags included.
func GetIcon(db *gorm.DB, viewer identity.Identity, id uint64) (*models.Icon, error) {
	var icon models.Icon
	err := db.Preload("Taggings").Preload("Taggings.Tag").First(&icon, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Icon")
		}
		return nil, err
	}
	if err := viewGate(viewer, icon.AuthorID, "Icon"); err != nil {
		return nil, err
	}
	return &icon, nil
}

// UpdateIcon applies a partial edit to an icon owned by viewer.
func UpdateIcon(db *gorm.DB, viewer identity.Identity, id uint64, patch IconPatch) (*models.Icon, error) {
	icon, err := GetIcon(db, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := mutateGate(viewer, icon.AuthorID, "Icon"); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.ImageURL != nil {
		values["image_url"] = *patch.ImageURL
	}
	if len(values) == 0 {
		return icon, nil
	}

	if err := db.Model(icon).Updates(values).Error; err != nil {
		return nil, err
	}
	return icon, nil
}

// DeleteIcon removes an icon owned by viewer. Dependent cards are deleted
// along with it, and every tagging referencing the icon or those cards goes
// too, all in one transaction so no orphan rows survive a crash.
func DeleteIcon(db *gorm.DB, viewer identity.Identity, id uint64) error {
	var icon models.Icon
	if err := db.First(&icon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Icon")
		}
		return err
	}
	if err := mutateGate(viewer, icon.AuthorID, "Icon"); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var cardIDs []uint64
		if err := tx.Model(&models.Card{}).
			Where("icon_id = ?", icon.ID).
			Pluck("id", &cardIDs).Error; err != nil {
			return err
		}

		if len(cardIDs) > 0 {
			if err := tx.Where("card_id IN ?", cardIDs).Delete(&models.Tagging{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", cardIDs).Delete(&models.Card{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("icon_id = ?", icon.ID).Delete(&models.Tagging{}).Error; err != nil {
			return err
		}

		return tx.Delete(&icon).Error
	})
}

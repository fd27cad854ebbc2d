package services

import (
	"errors"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// CardInput is the payload for card creation.
type CardInput struct {
	Text      string  `json:"text" validate:"max=255"`
	IconID    uint64  `json:"iconId" validate:"required"`
	LanyardID *uint64 `json:"lanyardId"`
}

// CardPatch carries partial-field edits; nil fields are left untouched.
type CardPatch struct {
	Text   *string `json:"text" validate:"omitempty,max=255"`
	IconID *uint64 `json:"iconId"`
}

// CreateCard persists a new card owned by viewer. The referenced icon must be
// visible to the viewer (their own or a system asset); the containing
// lanyard, when given, must be the viewer's own since membership never
// crosses authors.
func CreateCard(db *gorm.DB, viewer identity.Identity, input CardInput) (*models.Card, error) {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return nil, err
	}

	if _, err := GetIcon(db, viewer, input.IconID); err != nil {
		return nil, err
	}

	if input.LanyardID != nil {
		lanyard, err := GetLanyard(db, viewer, *input.LanyardID)
		if err != nil {
			return nil, err
		}
		if err := mutateGate(viewer, lanyard.AuthorID, "Lanyard"); err != nil {
			return nil, err
		}
	}

	card := models.Card{
		Text:      input.Text,
		IconID:    input.IconID,
		LanyardID: input.LanyardID,
		AuthorID:  authorID,
	}
	if err := db.Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCards returns cards visible to viewer with their taggings.
func ListCards(db *gorm.DB, viewer identity.Identity) ([]models.Card, error) {
	var cards []models.Card
	err := db.Scopes(policy.VisibilityScope(viewer)).
		Preload("Taggings").
		Find(&cards).Error
	return cards, err
}

// GetCard loads a card visible to viewer, taggings and tags included.
func GetCard(db *gorm.DB, viewer identity.Identity, id uint64) (*models.Card, error) {
	var card models.Card
	err := db.Preload("Taggings").Preload("Taggings.Tag").First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Card")
		}
		return nil, err
	}
	if err := viewGate(viewer, card.AuthorID, "Card"); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies a partial edit to a card owned by viewer. A changed icon
// reference must point at an icon the viewer can see.
func UpdateCard(db *gorm.DB, viewer identity.Identity, id uint64, patch CardPatch) (*models.Card, error) {
	card, err := GetCard(db, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := mutateGate(viewer, card.AuthorID, "Card"); err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if patch.Text != nil {
		values["text"] = *patch.Text
	}
	if patch.IconID != nil {
		if _, err := GetIcon(db, viewer, *patch.IconID); err != nil {
			return nil, err
		}
		values["icon_id"] = *patch.IconID
	}
	if len(values) == 0 {
		return card, nil
	}

	if err := db.Model(card).Updates(values).Error; err != nil {
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a card owned by viewer together with its taggings.
func DeleteCard(db *gorm.DB, viewer identity.Identity, id uint64) error {
	var card models.Card
	if err := db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Card")
		}
		return err
	}
	if err := mutateGate(viewer, card.AuthorID, "Card"); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", card.ID).Delete(&models.Tagging{}).Error; err != nil {
			return err
		}
		return tx.Delete(&card).Error
	})
}

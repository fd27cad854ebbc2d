package services

import (
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"gorm.io/gorm"
)

// The system-assets listings serve every viewer, anonymous included, and only
// ever return system-owned rows. Instance reads reuse the policy-checked
// getters with an anonymous viewer, which the system carve-out admits.

func systemOnly(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", identity.SystemStorageID)
}

// ListSystemIcons returns the system author's icons with their taggings.
func ListSystemIcons(db *gorm.DB) ([]models.Icon, error) {
	var icons []models.Icon
	err := systemOnly(db).Preload("Taggings").Preload("Taggings.Tag").Find(&icons).Error
	return icons, err
}

// ListSystemCards returns the system author's cards with their taggings.
func ListSystemCards(db *gorm.DB) ([]models.Card, error) {
	var cards []models.Card
	err := systemOnly(db).Preload("Taggings").Preload("Taggings.Tag").Find(&cards).Error
	return cards, err
}

// ListSystemLanyards returns the system author's lanyards with their taggings.
func ListSystemLanyards(db *gorm.DB) ([]models.Lanyard, error) {
	var lanyards []models.Lanyard
	err := systemOnly(db).Preload("Taggings").Preload("Taggings.Tag").Preload("Cards").Find(&lanyards).Error
	return lanyards, err
}

// ListSystemTags returns the system author's tags.
func ListSystemTags(db *gorm.DB) ([]models.Tag, error) {
	var tags []models.Tag
	err := systemOnly(db).Find(&tags).Error
	return tags, err
}

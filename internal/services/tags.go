package services

import (
	"errors"
	"fmt"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// TagInput is the payload for tag creation.
type TagInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// TagPatch carries partial-field edits; nil fields are left untouched.
type TagPatch struct {
	Name *string `json:"name" validate:"omitempty,max=255"`
}

// CreateTag persists a new tag owned by viewer. Names are unique per author.
func CreateTag(db *gorm.DB, viewer identity.Identity, input TagInput) (*models.Tag, error) {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Tag{}).
		Where("name = ? AND author_id = ?", input.Name, authorID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.NewConflict(fmt.Sprintf("tag %q already exists", input.Name))
	}

	tag := models.Tag{Name: input.Name, AuthorID: authorID}
	if err := db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// ListTags returns tags visible to viewer.
func ListTags(db *gorm.DB, viewer identity.Identity) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Scopes(policy.VisibilityScope(viewer)).Find(&tags).Error
	return tags, err
}

// GetTag loads a tag visible to viewer.
func GetTag(db *gorm.DB, viewer identity.Identity, id uint64) (*models.Tag, error) {
	var tag models.Tag
	if err := db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Tag")
		}
		return nil, err
	}
	if err := viewGate(viewer, tag.AuthorID, "Tag"); err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag renames a tag owned by viewer, keeping per-author uniqueness.
func UpdateTag(db *gorm.DB, viewer identity.Identity, id uint64, patch TagPatch) (*models.Tag, error) {
	tag, err := GetTag(db, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := mutateGate(viewer, tag.AuthorID, "Tag"); err != nil {
		return nil, err
	}

	if patch.Name == nil {
		return tag, nil
	}

	var count int64
	if err := db.Model(&models.Tag{}).
		Where("name = ? AND author_id = ? AND id <> ?", *patch.Name, tag.AuthorID, tag.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.NewConflict(fmt.Sprintf("tag %q already exists", *patch.Name))
	}

	if err := db.Model(tag).Update("name", *patch.Name).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag owned by viewer together with its taggings.
func DeleteTag(db *gorm.DB, viewer identity.Identity, id uint64) error {
	tag, err := GetTag(db, viewer, id)
	if err != nil {
		return err
	}
	if err := mutateGate(viewer, tag.AuthorID, "Tag"); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&models.Tagging{}).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

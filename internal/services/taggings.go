package services

import (
	"errors"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

// targetColumn maps a target kind onto its taggings foreign-key column.
func targetColumn(kind models.TargetKind) string {
	switch kind {
	case models.TargetCard:
		return "card_id"
	case models.TargetIcon:
		return "icon_id"
	case models.TargetLanyard:
		return "lanyard_id"
	}
	return ""
}

// targetResource is the resource name used in not_found errors per kind.
func targetResource(kind models.TargetKind) string {
	switch kind {
	case models.TargetCard:
		return "Card"
	case models.TargetIcon:
		return "Icon"
	case models.TargetLanyard:
		return "Lanyard"
	}
	return "Target"
}

// resolveTargetAuthor loads the target entity and returns its author id.
// Missing targets are not_found under the kind's resource name.
func resolveTargetAuthor(db *gorm.DB, target models.TaggingTarget) (int64, error) {
	var authorID int64
	var err error

	switch target.Kind {
	case models.TargetCard:
		var card models.Card
		err = db.Select("author_id").First(&card, target.ID).Error
		authorID = card.AuthorID
	case models.TargetIcon:
		var icon models.Icon
		err = db.Select("author_id").First(&icon, target.ID).Error
		authorID = icon.AuthorID
	case models.TargetLanyard:
		var lanyard models.Lanyard
		err = db.Select("author_id").First(&lanyard, target.ID).Error
		authorID = lanyard.AuthorID
	default:
		return 0, types.NewValidation("target kind must be one of: icon, card, lanyard")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, types.NewNotFound(targetResource(target.Kind))
		}
		return 0, err
	}
	return authorID, nil
}

// requireTaggableTag loads the tag and enforces the attachment rule: the tag
// must belong to the caller. System tags are never attachable through the
// user routes; invisible tags stay not_found.
func requireTaggableTag(db *gorm.DB, viewer identity.Identity, tagID uint64) (*models.Tag, error) {
	tag, err := GetTag(db, viewer, tagID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(viewer, identity.FromStorage(tag.AuthorID)) {
		return nil, types.NewNotAllowed()
	}
	return tag, nil
}

// CreateTagging attaches a tag to one target entity. The target must be
// visible to the caller (their own or a system asset) and the tag must be the
// caller's own. Creating the same (tag, target) pair again is a no-op
// returning the existing row, never a duplicate.
func CreateTagging(db *gorm.DB, viewer identity.Identity, tagID uint64, target models.TaggingTarget) (*models.Tagging, error) {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return nil, err
	}

	if _, err := requireTaggableTag(db, viewer, tagID); err != nil {
		return nil, err
	}

	targetAuthor, err := resolveTargetAuthor(db, target)
	if err != nil {
		return nil, err
	}
	if err := viewGate(viewer, targetAuthor, targetResource(target.Kind)); err != nil {
		return nil, err
	}

	column := targetColumn(target.Kind)
	var tagging models.Tagging

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tag_id = ? AND "+column+" = ?", tagID, target.ID).
			First(&tagging).Error
		if err == nil {
			return nil // already tagged, at-most-one holds
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fresh, err := models.NewTagging(tagID, target, authorID)
		if err != nil {
			return types.NewValidation(err.Error())
		}
		if err := tx.Create(fresh).Error; err != nil {
			return err
		}
		tagging = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tagging, nil
}

// GetTagging loads a tagging visible to viewer with its tag.
func GetTagging(db *gorm.DB, viewer identity.Identity, id uint64) (*models.Tagging, error) {
	var tagging models.Tagging
	if err := db.Preload("Tag").First(&tagging, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFound("Tagging")
		}
		return nil, err
	}
	if err := viewGate(viewer, tagging.AuthorID, "Tagging"); err != nil {
		return nil, err
	}
	return &tagging, nil
}

// ListTaggings returns taggings visible to viewer.
func ListTaggings(db *gorm.DB, viewer identity.Identity) ([]models.Tagging, error) {
	var taggings []models.Tagging
	err := db.Scopes(policy.VisibilityScope(viewer)).Find(&taggings).Error
	return taggings, err
}

// ListTaggingsForTarget returns the taggings attached to one target entity,
// tags included, provided the target is visible to viewer.
func ListTaggingsForTarget(db *gorm.DB, viewer identity.Identity, target models.TaggingTarget) ([]models.Tagging, error) {
	targetAuthor, err := resolveTargetAuthor(db, target)
	if err != nil {
		return nil, err
	}
	if err := viewGate(viewer, targetAuthor, targetResource(target.Kind)); err != nil {
		return nil, err
	}

	var taggings []models.Tagging
	err = db.Where(targetColumn(target.Kind)+" = ?", target.ID).
		Preload("Tag").
		Find(&taggings).Error
	return taggings, err
}

// RemoveTagging deletes a tagging owned by viewer.
func RemoveTagging(db *gorm.DB, viewer identity.Identity, id uint64) error {
	var tagging models.Tagging
	if err := db.First(&tagging, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFound("Tagging")
		}
		return err
	}
	if err := mutateGate(viewer, tagging.AuthorID, "Tagging"); err != nil {
		return err
	}
	return db.Delete(&tagging).Error
}

// ReconcileTaggings sets the target's tag membership to match toAdd/toRemove
// in one transaction. Tags in toAdd not yet attached are attached; tags in
// toRemove that are attached come off. System-owned tags in either list are
// silently skipped: the relationship between an item and a system tag is
// never user-mutable. The existence check before insert keeps the operation
// idempotent.
func ReconcileTaggings(db *gorm.DB, viewer identity.Identity, target models.TaggingTarget, toAdd, toRemove []uint64) error {
	authorID, err := authorStorageID(viewer)
	if err != nil {
		return err
	}

	targetAuthor, err := resolveTargetAuthor(db, target)
	if err != nil {
		return err
	}
	if err := viewGate(viewer, targetAuthor, targetResource(target.Kind)); err != nil {
		return err
	}

	column := targetColumn(target.Kind)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, tagID := range toAdd {
			tag, err := GetTag(tx, viewer, tagID)
			if err != nil {
				return err
			}
			if identity.FromStorage(tag.AuthorID).IsSystem() {
				continue
			}

			var count int64
			if err := tx.Model(&models.Tagging{}).
				Where("tag_id = ? AND "+column+" = ?", tagID, target.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			tagging, err := models.NewTagging(tagID, target, authorID)
			if err != nil {
				return types.NewValidation(err.Error())
			}
			if err := tx.Create(tagging).Error; err != nil {
				return err
			}
		}

		for _, tagID := range toRemove {
			tag, err := GetTag(tx, viewer, tagID)
			if err != nil {
				return err
			}
			if identity.FromStorage(tag.AuthorID).IsSystem() {
				continue
			}

			if err := tx.Where("tag_id = ? AND "+column+" = ?", tagID, target.ID).
				Delete(&models.Tagging{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

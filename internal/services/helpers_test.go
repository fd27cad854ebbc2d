package services_test

import (
	"errors"
	"testing"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/services"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

var (
	alice = identity.User(1)
	bob   = identity.User(2)
)

func mustIcon(t *testing.T, db *gorm.DB, viewer identity.Identity, name string) *models.Icon {
	t.Helper()
	icon, err := services.CreateIcon(db, viewer, services.IconInput{
		Name:     name,
		ImageURL: "https://example.com/" + name + ".svg",
	})
	if err != nil {
		t.Fatalf("Failed to create icon %q: %v", name, err)
	}
	return icon
}

func mustCard(t *testing.T, db *gorm.DB, viewer identity.Identity, text string, iconID uint64) *models.Card {
	t.Helper()
	card, err := services.CreateCard(db, viewer, services.CardInput{Text: text, IconID: iconID})
	if err != nil {
		t.Fatalf("Failed to create card %q: %v", text, err)
	}
	return card
}

func mustLanyard(t *testing.T, db *gorm.DB, viewer identity.Identity, name string) *models.Lanyard {
	t.Helper()
	lanyard, err := services.CreateLanyard(db, viewer, services.LanyardInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create lanyard %q: %v", name, err)
	}
	return lanyard
}

func mustTag(t *testing.T, db *gorm.DB, viewer identity.Identity, name string) *models.Tag {
	t.Helper()
	tag, err := services.CreateTag(db, viewer, services.TagInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create tag %q: %v", name, err)
	}
	return tag
}

// systemIcon plants a system-owned icon directly, the way the seeder would.
func systemIcon(t *testing.T, db *gorm.DB, name string) *models.Icon {
	t.Helper()
	icon := models.Icon{
		Name:     name,
		ImageURL: "https://example.com/" + name + ".svg",
		AuthorID: identity.SystemStorageID,
	}
	if err := db.Create(&icon).Error; err != nil {
		t.Fatalf("Failed to create system icon %q: %v", name, err)
	}
	return &icon
}

func systemTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, AuthorID: identity.SystemStorageID}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("Failed to create system tag %q: %v", name, err)
	}
	return &tag
}

func wantErrType(t *testing.T, err error, errType string) {
	t.Helper()
	var derr *types.DomainError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected a %s domain error, got %v", errType, err)
	}
	if derr.Type != errType {
		t.Fatalf("Expected error type %s, got %s (%v)", errType, derr.Type, err)
	}
}

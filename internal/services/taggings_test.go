package services_test

import (
	"testing"

	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/models"
	"github.com/mylanyard/server/internal/services"
	"github.com/mylanyard/server/internal/testutil"
	"github.com/mylanyard/server/internal/types"
	"gorm.io/gorm"
)

func countTaggings(t *testing.T, db *gorm.DB, where string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Tagging{}).Where(where, args...).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count taggings: %v", err)
	}
	return count
}

func TestCreateTagging(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	tag := mustTag(t, db, alice, "favorites")

	target := models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}
	tagging, err := services.CreateTagging(db, alice, tag.ID, target)
	if err != nil {
		t.Fatalf("Failed to create tagging: %v", err)
	}

	got, ok := tagging.Target()
	if !ok || got != target {
		t.Errorf("Expected target %+v, got %+v", target, got)
	}
	if tagging.AuthorID != 1 {
		t.Errorf("Expected author id 1, got %d", tagging.AuthorID)
	}
}

func TestCreateTaggingIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	tag := mustTag(t, db, alice, "favorites")
	target := models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}

	first, err := services.CreateTagging(db, alice, tag.ID, target)
	if err != nil {
		t.Fatalf("Failed to create tagging: %v", err)
	}
	second, err := services.CreateTagging(db, alice, tag.ID, target)
	if err != nil {
		t.Fatalf("Failed to re-create tagging: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Expected the existing tagging back, got %d then %d", first.ID, second.ID)
	}
	if n := countTaggings(t, db, "tag_id = ?", tag.ID); n != 1 {
		t.Errorf("Expected exactly one tagging, got %d", n)
	}
}

func TestCreateTaggingRequiresOwnTag(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	target := models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}

	// Another user's tag reads as not found.
	bobsTag := mustTag(t, db, bob, "bobs")
	_, err := services.CreateTagging(db, alice, bobsTag.ID, target)
	wantErrType(t, err, types.TypeNotFound)

	// A system tag is visible but never attachable.
	stock := systemTag(t, db, "featured")
	_, err = services.CreateTagging(db, alice, stock.ID, target)
	wantErrType(t, err, types.TypeNotAllowed)
}

func TestCreateTaggingTargetMustBeVisible(t *testing.T) {
	db := testutil.OpenDB(t)
	tag := mustTag(t, db, alice, "favorites")

	bobsIcon := mustIcon(t, db, bob, "secret")
	_, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: bobsIcon.ID})
	wantErrType(t, err, types.TypeNotFound)

	_, err = services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: 9999})
	wantErrType(t, err, types.TypeNotFound)
}

func TestCreateTaggingOnSystemTarget(t *testing.T) {
	db := testutil.OpenDB(t)
	stock := systemIcon(t, db, "stock-star")
	tag := mustTag(t, db, alice, "favorites")

	// Users may tag public system assets with their own tags.
	tagging, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: stock.ID})
	if err != nil {
		t.Fatalf("Failed to tag system icon: %v", err)
	}
	if tagging.AuthorID != 1 {
		t.Errorf("Expected the tagging to belong to the user, got author %d", tagging.AuthorID)
	}
}

func TestCreateTaggingAnonymous(t *testing.T) {
	db := testutil.OpenDB(t)
	stock := systemIcon(t, db, "stock-star")

	_, err := services.CreateTagging(db, identity.Anonymous(), 1, models.TaggingTarget{Kind: models.TargetIcon, ID: stock.ID})
	wantErrType(t, err, types.TypeUnauthenticated)
}

func TestRemoveTagging(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	tag := mustTag(t, db, alice, "favorites")
	tagging, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID})
	if err != nil {
		t.Fatalf("Failed to create tagging: %v", err)
	}

	// Another user can neither see nor remove it.
	err = services.RemoveTagging(db, bob, tagging.ID)
	wantErrType(t, err, types.TypeNotFound)

	if err := services.RemoveTagging(db, alice, tagging.ID); err != nil {
		t.Fatalf("Failed to remove tagging: %v", err)
	}
	if n := countTaggings(t, db, "id = ?", tagging.ID); n != 0 {
		t.Error("Expected tagging to be gone")
	}
}

func TestListTaggingsForTarget(t *testing.T) {
	db := testutil.OpenDB(t)
	card := mustCard(t, db, alice, "hello", mustIcon(t, db, alice, "star").ID)
	red := mustTag(t, db, alice, "red")
	blue := mustTag(t, db, alice, "blue")

	target := models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}
	for _, tag := range []*models.Tag{red, blue} {
		if _, err := services.CreateTagging(db, alice, tag.ID, target); err != nil {
			t.Fatalf("Failed to create tagging: %v", err)
		}
	}

	taggings, err := services.ListTaggingsForTarget(db, alice, target)
	if err != nil {
		t.Fatalf("Failed to list taggings: %v", err)
	}
	if len(taggings) != 2 {
		t.Fatalf("Expected 2 taggings, got %d", len(taggings))
	}
	for _, tagging := range taggings {
		if tagging.Tag == nil {
			t.Error("Expected tag to be preloaded")
		}
	}

	// The target is private, so the listing is too.
	_, err = services.ListTaggingsForTarget(db, bob, target)
	wantErrType(t, err, types.TypeNotFound)
}

func TestReconcileTaggings(t *testing.T) {
	db := testutil.OpenDB(t)
	card := mustCard(t, db, alice, "hello", mustIcon(t, db, alice, "star").ID)
	red := mustTag(t, db, alice, "red")
	blue := mustTag(t, db, alice, "blue")
	target := models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}

	// Attach {red, blue}, then remove red: {blue} remains.
	if err := services.ReconcileTaggings(db, alice, target, []uint64{red.ID, blue.ID}, nil); err != nil {
		t.Fatalf("Failed to attach tags: %v", err)
	}
	if err := services.ReconcileTaggings(db, alice, target, nil, []uint64{red.ID}); err != nil {
		t.Fatalf("Failed to detach tag: %v", err)
	}

	taggings, err := services.ListTaggingsForTarget(db, alice, target)
	if err != nil {
		t.Fatalf("Failed to list taggings: %v", err)
	}
	if len(taggings) != 1 || taggings[0].TagID != blue.ID {
		t.Errorf("Expected only %q to remain, got %d taggings", "blue", len(taggings))
	}
}

func TestReconcileTaggingsIdempotentAdds(t *testing.T) {
	db := testutil.OpenDB(t)
	card := mustCard(t, db, alice, "hello", mustIcon(t, db, alice, "star").ID)
	red := mustTag(t, db, alice, "red")
	target := models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}

	for i := 0; i < 3; i++ {
		if err := services.ReconcileTaggings(db, alice, target, []uint64{red.ID}, nil); err != nil {
			t.Fatalf("Failed to reconcile: %v", err)
		}
	}
	if n := countTaggings(t, db, "tag_id = ? AND card_id = ?", red.ID, card.ID); n != 1 {
		t.Errorf("Expected one tagging after repeated adds, got %d", n)
	}
}

func TestReconcileTaggingsSkipsSystemTags(t *testing.T) {
	db := testutil.OpenDB(t)
	card := mustCard(t, db, alice, "hello", mustIcon(t, db, alice, "star").ID)
	stock := systemTag(t, db, "featured")
	target := models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}

	if err := services.ReconcileTaggings(db, alice, target, []uint64{stock.ID}, nil); err != nil {
		t.Fatalf("Expected system tags to be skipped, got %v", err)
	}
	if n := countTaggings(t, db, "tag_id = ?", stock.ID); n != 0 {
		t.Errorf("Expected no tagging for the system tag, got %d", n)
	}
}

func TestDeleteIconCascadesTaggings(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	card := mustCard(t, db, alice, "hello", icon.ID)
	tag := mustTag(t, db, alice, "favorites")

	if _, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}); err != nil {
		t.Fatalf("Failed to tag icon: %v", err)
	}
	if _, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetCard, ID: card.ID}); err != nil {
		t.Fatalf("Failed to tag card: %v", err)
	}

	if err := services.DeleteIcon(db, alice, icon.ID); err != nil {
		t.Fatalf("Failed to delete icon: %v", err)
	}

	// The dependent card and both taggings go with the icon.
	var cards int64
	if err := db.Model(&models.Card{}).Count(&cards).Error; err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if cards != 0 {
		t.Errorf("Expected dependent card to be deleted, %d remain", cards)
	}
	if n := countTaggings(t, db, "1 = 1"); n != 0 {
		t.Errorf("Expected all taggings to be deleted, %d remain", n)
	}
}

func TestDeleteTagCascadesTaggings(t *testing.T) {
	db := testutil.OpenDB(t)
	icon := mustIcon(t, db, alice, "star")
	tag := mustTag(t, db, alice, "favorites")
	if _, err := services.CreateTagging(db, alice, tag.ID, models.TaggingTarget{Kind: models.TargetIcon, ID: icon.ID}); err != nil {
		t.Fatalf("Failed to tag icon: %v", err)
	}

	if err := services.DeleteTag(db, alice, tag.ID); err != nil {
		t.Fatalf("Failed to delete tag: %v", err)
	}
	if n := countTaggings(t, db, "tag_id = ?", tag.ID); n != 0 {
		t.Errorf("Expected taggings to be deleted with the tag, %d remain", n)
	}
}

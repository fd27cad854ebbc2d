// Package policy holds the ownership/visibility predicates applied by every
// handler. The predicates are pure; VisibilityScope pushes the same rule into
// the store query so listings never need post-filtering.
package policy

import (
	"github.com/mylanyard/server/internal/identity"
	"gorm.io/gorm"
)

// CanView reports whether viewer may read a record owned by owner.
// System-owned records are public, including to anonymous viewers. Everything
// else is visible to its owner only. A missing identity always denies; there
// is no implicit bypass.
func CanView(viewer, owner identity.Identity) bool {
	if owner.IsSystem() {
		return true
	}
	return viewer.IsUser() && viewer.Equal(owner)
}

// CanMutate reports whether viewer may update or delete a record owned by
// owner. System-owned records are immutable through entity routes for every
// viewer, including a session authenticated as the system account; seeding is
// the only write path for system assets.
func CanMutate(viewer, owner identity.Identity) bool {
	if owner.IsSystem() {
		return false
	}
	return viewer.IsUser() && viewer.Equal(owner)
}

// VisibilityScope returns the query condition "owned by the system author or
// by the viewer". Anonymous viewers degrade to system-owned rows only.
func VisibilityScope(viewer identity.Identity) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id, ok := viewer.UserID(); ok {
			return db.Where("author_id IN ?", []int64{identity.SystemStorageID, int64(id)})
		}
		return db.Where("author_id = ?", identity.SystemStorageID)
	}
}

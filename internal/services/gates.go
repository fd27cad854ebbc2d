package services

import (
	"github.com/mylanyard/server/internal/identity"
	"github.com/mylanyard/server/internal/policy"
	"github.com/mylanyard/server/internal/types"
)

// viewGate converts a failed visibility check into not_found so private
// records are indistinguishable from missing ones.
func viewGate(viewer identity.Identity, authorID int64, resource string) error {
	if !policy.CanView(viewer, identity.FromStorage(authorID)) {
		return types.NewNotFound(resource)
	}
	return nil
}

// mutateGate applies the stricter mutation predicate. Invisible records stay
// not_found; visible-but-unowned records (system assets) are not_allowed.
func mutateGate(viewer identity.Identity, authorID int64, resource string) error {
	owner := identity.FromStorage(authorID)
	if !policy.CanView(viewer, owner) {
		return types.NewNotFound(resource)
	}
	if !policy.CanMutate(viewer, owner) {
		return types.NewNotAllowed()
	}
	return nil
}

// authorStorageID resolves the author_id column value for a creating viewer.
// Only registered users author records through the API.
func authorStorageID(viewer identity.Identity) (int64, error) {
	id, ok := viewer.UserID()
	if !ok {
		return 0, types.NewUnauthenticated()
	}
	return int64(id), nil
}

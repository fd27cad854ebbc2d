package identity_test

import (
	"testing"

	"github.com/mylanyard/server/internal/identity"
)

func TestFromStorageRoundTrip(t *testing.T) {
	if got := identity.FromStorage(identity.SystemStorageID); !got.IsSystem() {
		t.Errorf("Expected system identity for %d, got %v", identity.SystemStorageID, got)
	}

	user := identity.FromStorage(42)
	if !user.IsUser() {
		t.Fatalf("Expected user identity, got %v", user)
	}
	if id, ok := user.UserID(); !ok || id != 42 {
		t.Errorf("Expected user id 42, got %d (ok=%v)", id, ok)
	}
	if user.StorageID() != 42 {
		t.Errorf("Expected storage id 42, got %d", user.StorageID())
	}
}

func TestZeroValueIsAnonymous(t *testing.T) {
	var id identity.Identity
	if !id.IsAnonymous() {
		t.Error("Expected zero value to be anonymous")
	}
	if !id.Equal(identity.Anonymous()) {
		t.Error("Expected zero value to equal Anonymous()")
	}
	if _, ok := id.UserID(); ok {
		t.Error("Expected anonymous identity to have no user id")
	}
}

func TestAnonymousStorageIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected StorageID to panic for anonymous identity")
		}
	}()
	identity.Anonymous().StorageID()
}

func TestEqualDistinguishesKinds(t *testing.T) {
	if identity.System().Equal(identity.User(1)) {
		t.Error("Expected system != user")
	}
	if identity.User(1).Equal(identity.User(2)) {
		t.Error("Expected different user ids to differ")
	}
	if !identity.User(7).Equal(identity.User(7)) {
		t.Error("Expected same user ids to be equal")
	}
	if !identity.System().Equal(identity.System()) {
		t.Error("Expected system to equal system")
	}
}

// Package identity models the three kinds of viewer/owner the service
// recognizes: anonymous visitors, registered users, and the reserved system
// author that owns the pre-seeded public assets.
package identity

import "fmt"

// SystemStorageID is the author_id value stored for system-owned rows.
const SystemStorageID int64 = -1

type kind int

const (
	kindAnonymous kind = iota
	kindUser
	kindSystem
)

// Identity is a viewer or owner identity. The zero value is anonymous.
type Identity struct {
	kind kind
	user uint64
}

// Anonymous returns the identity of an unauthenticated viewer.
func Anonymous() Identity {
	return Identity{}
}

// User returns the identity of the registered user with the given id.
func User(id uint64) Identity {
	return Identity{kind: kindUser, user: id}
}

// System returns the reserved system author identity.
func System() Identity {
	return Identity{kind: kindSystem}
}

// FromStorage maps a stored author_id column value back to an Identity.
func FromStorage(authorID int64) Identity {
	if authorID == SystemStorageID {
		return System()
	}
	return User(uint64(authorID))
}

func (i Identity) IsAnonymous() bool { return i.kind == kindAnonymous }
func (i Identity) IsUser() bool      { return i.kind == kindUser }
func (i Identity) IsSystem() bool    { return i.kind == kindSystem }

// UserID returns the user id and true when the identity is a registered user.
func (i Identity) UserID() (uint64, bool) {
	if i.kind != kindUser {
		return 0, false
	}
	return i.user, true
}

// StorageID returns the author_id column value for an owner identity.
// Anonymous identities never own rows and panic here to catch misuse early.
func (i Identity) StorageID() int64 {
	switch i.kind {
	case kindSystem:
		return SystemStorageID
	case kindUser:
		return int64(i.user)
	}
	panic("identity: anonymous identity has no storage id")
}

// Equal reports whether two identities denote the same principal.
func (i Identity) Equal(other Identity) bool {
	return i.kind == other.kind && i.user == other.user
}

func (i Identity) String() string {
	switch i.kind {
	case kindSystem:
		return "system"
	case kindUser:
		return fmt.Sprintf("user:%d", i.user)
	}
	return "anonymous"
}

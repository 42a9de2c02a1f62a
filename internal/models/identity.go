package models

import "github.com/google/uuid"

type IdentityKind int

const (
	// IdentityGuest is the offline/demo mode identity on the local backend.
	IdentityGuest IdentityKind = iota
	// IdentityUser is an authenticated account scoped to its own rows.
	IdentityUser
	// IdentityAdmin is an authenticated account with the admin capability,
	// which lifts the per-user filter on reads.
	IdentityAdmin
)

// Identity replaces the untyped session object with an explicit variant so
// the three access modes are exhaustively handled.
type Identity struct {
	Kind   IdentityKind
	UserID uuid.UUID
	Email  string
}

func Guest() Identity {
	return Identity{Kind: IdentityGuest}
}

func (i Identity) Admin() bool {
	return i.Kind == IdentityAdmin
}

// CacheKey names the row scope an identity reads. The dashboard cache is
// tagged with it so one identity never serves another's snapshot.
func (i Identity) CacheKey() string {
	switch i.Kind {
	case IdentityUser:
		return "user:" + i.UserID.String() + ":" + i.Email
	case IdentityAdmin:
		return "admin"
	default:
		return "guest"
	}
}

// OwnerID returns the user id filter for scoped reads, or nil when the
// identity sees all rows (admin) or owns no account (guest).
func (i Identity) OwnerID() *uuid.UUID {
	if i.Kind == IdentityUser {
		id := i.UserID
		return &id
	}
	return nil
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PrincipalKind tags the two identities that can carry a valid token.
type PrincipalKind string

const (
	// PrincipalUser is a registered account backed by a users document.
	PrincipalUser PrincipalKind = "user"
	// PrincipalAdministrator is the platform administrator. It has no
	// users document and must never appear in any per-user collection;
	// owner-scoped queries short-circuit to empty results for it.
	PrincipalAdministrator PrincipalKind = "administrator"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Kind   PrincipalKind
	UserID primitive.ObjectID
}

func (p Principal) IsAdministrator() bool {
	return p.Kind == PrincipalAdministrator
}

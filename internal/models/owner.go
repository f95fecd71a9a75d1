package models

import "github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/constants"

// CartOwner identifies who a cart belongs to: an anonymous session or
// an authenticated user. It is resolved per request and used as the
// key into the cart store, never persisted as its own entity.
type CartOwner struct {
	Kind string
	ID   string
}

// SessionOwner builds an anonymous session owner.
func SessionOwner(sessionID string) CartOwner {
	return CartOwner{Kind: constants.OwnerKindSession, ID: sessionID}
}

// UserOwner builds an authenticated user owner.
func UserOwner(userID string) CartOwner {
	return CartOwner{Kind: constants.OwnerKindUser, ID: userID}
}

// Key returns the storage key for this owner. User and session ids
// live in separate namespaces, so "user:42" never collides with
// "session:42".
func (o CartOwner) Key() string {
	return o.Kind + ":" + o.ID
}

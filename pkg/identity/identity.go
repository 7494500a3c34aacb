package identity

import (
	"context"

	"conduit-in-go/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated caller for a request.
type Identity struct {
	UserID    uint
	ProfileID uint
	Username  string
}

// FromUser creates an Identity from a user with its profile preloaded.
func FromUser(u *model.User) *Identity {
	id := &Identity{
		UserID:   u.ID,
		Username: u.Username,
	}
	if u.Profile != nil {
		id.ProfileID = u.Profile.ID
	}
	return id
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}

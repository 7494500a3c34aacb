package store

import "conduit-in-go/pkg/model"

// UsersStore abstracts user and profile storage operations
type UsersStore interface {
	// FindByToken resolves an opaque authentication token to its user,
	// with the profile preloaded. This is the token lookup service used
	// by the authentication middleware.
	FindByToken(token string) (*model.User, error)

	// FindByUsername retrieves a user by username, with the profile
	// preloaded.
	FindByUsername(username string) (*model.User, error)

	// CreateUser persists a new user together with its profile.
	CreateUser(user *model.User) error

	// ProfileExists reports whether a profile row exists.
	ProfileExists(id uint) (bool, error)
}

package gorm

import (
	"gorm.io/gorm"

	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FindByToken resolves an opaque authentication token to its user
func (s *UsersStore) FindByToken(token string) (*model.User, error) {
	var user model.User
	err := s.db.
		Preload("Profile").
		Where("token = ?", token).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByUsername retrieves a user by username
func (s *UsersStore) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := s.db.
		Preload("Profile").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// CreateUser persists a new user together with its profile
func (s *UsersStore) CreateUser(user *model.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// The association is omitted so the profile is inserted exactly
		// once, below, after the user ID is known.
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		if user.Profile == nil {
			user.Profile = &model.Profile{}
		}
		user.Profile.UserID = user.ID
		return tx.Create(user.Profile).Error
	})
	return translateError(err)
}

// ProfileExists reports whether a profile row exists
func (s *UsersStore) ProfileExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.Profile{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// User represents a registered account. Passwords are stored hashed; the
// token is an opaque credential generated once at creation and stable for
// the user's lifetime.
type User struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;not null;unique"`
	Email        string    `gorm:"column:email;not null;unique"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Token        string    `gorm:"column:token;not null;unique"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	Profile *Profile `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// GenerateToken returns a new opaque authentication token.
func GenerateToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

package model

import "time"

// Profile represents a user's public authoring identity. A profile is
// created together with its user and removed with it (ON DELETE CASCADE).
// Articles reference the profile, not the user, as their owner.
type Profile struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;unique"`
	Bio       string    `gorm:"column:bio"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	User *User `gorm:"foreignKey:UserID"`
}

func (Profile) TableName() string {
	return "profiles"
}

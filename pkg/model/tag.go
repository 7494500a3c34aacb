package model

import "time"

// Tag represents a named label attached to articles. Tags are created on
// first use (get-or-create by display string) and never removed when the
// last article drops them.
type Tag struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Tag       string    `gorm:"column:tag;not null;unique"`
	Slug      string    `gorm:"column:slug;not null;unique"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

package model

import "time"

// Article is the central entity: a titled body of text owned by a profile
// and labelled with tags. The slug is unique and immutable once assigned;
// later title changes never regenerate it.
type Article struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Slug      string    `gorm:"column:slug;not null;unique"`
	Title     string    `gorm:"column:title;not null"`
	Body      string    `gorm:"column:body;not null"`
	AuthorID  uint      `gorm:"column:author_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Author *Profile `gorm:"foreignKey:AuthorID"`
	Tags   []Tag    `gorm:"many2many:article_tags"`
}

func (Article) TableName() string {
	return "articles"
}

// OwnerProfileID identifies the owning profile for permission checks.
func (a Article) OwnerProfileID() uint {
	return a.AuthorID
}

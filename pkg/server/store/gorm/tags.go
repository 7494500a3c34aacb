package gorm

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
	"conduit-in-go/pkg/slugify"
)

// Ensure TagsStore implements store.TagsStore
var _ store.TagsStore = (*TagsStore)(nil)

// TagsStore implements store.TagsStore using GORM
type TagsStore struct {
	db *gorm.DB
}

// NewTagsStore creates a new TagsStore
func NewTagsStore(db *gorm.DB) *TagsStore {
	return &TagsStore{db: db}
}

// FindOrCreateTags resolves tag names to rows, creating missing ones
func (s *TagsStore) FindOrCreateTags(names []string) ([]model.Tag, error) {
	return findOrCreateTags(s.db, names)
}

// ListTags returns all tags ordered by display string
func (s *TagsStore) ListTags() ([]model.Tag, error) {
	var tags []model.Tag
	if err := s.db.Order("tag").Find(&tags).Error; err != nil {
		return nil, translateError(err)
	}
	return tags, nil
}

// findOrCreateTags is shared with the articles store so that tag
// resolution inside an article transaction uses the same semantics.
func findOrCreateTags(db *gorm.DB, names []string) ([]model.Tag, error) {
	seen := make(map[string]bool, len(names))
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := findOrCreateTag(db, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func findOrCreateTag(db *gorm.DB, name string) (*model.Tag, error) {
	var tag model.Tag
	err := db.Where("tag = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateError(err)
	}

	tag = model.Tag{Tag: name, Slug: slugify.Make(name)}
	err = db.Create(&tag).Error
	if err == nil {
		return &tag, nil
	}

	// The unique violation can be on either column: a concurrent request
	// created the same tag, or a differently spelled name normalizes to
	// an already taken slug ("go lang" vs "go-lang"). Both resolve to
	// the existing row.
	if errors.Is(translateError(err), store.ErrConflict) {
		if ferr := db.Where("tag = ? OR slug = ?", name, tag.Slug).First(&tag).Error; ferr == nil {
			return &tag, nil
		}
	}
	return nil, translateError(err)
}

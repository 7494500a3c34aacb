package store

import "conduit-in-go/pkg/model"

// TagsStore abstracts tag storage operations
type TagsStore interface {
	// FindOrCreateTags resolves tag names to Tag rows, creating missing
	// ones with a slug derived from the name. Blank and duplicate names
	// are ignored; resolution is order-independent.
	FindOrCreateTags(names []string) ([]model.Tag, error)

	// ListTags returns all tags ordered by display string.
	ListTags() ([]model.Tag, error)
}

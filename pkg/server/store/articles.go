package store

import "conduit-in-go/pkg/model"

// ArticleFilter restricts article listings. Zero values mean no filter;
// both filters compose with logical AND.
type ArticleFilter struct {
	Tag    string // exact tag display string
	Author string // exact author username
}

// ArticlesStore abstracts article storage operations
type ArticlesStore interface {
	// CreateArticle persists a new article. When article.Slug is empty a
	// unique slug is derived from the title, disambiguated with a numeric
	// suffix. tagNames are resolved with get-or-create semantics.
	CreateArticle(article *model.Article, tagNames []string) error

	// FetchArticle retrieves a single article by slug, with author and
	// tags populated.
	FetchArticle(slug string) (*model.Article, error)

	// ListArticles returns articles matching filter, newest first.
	ListArticles(filter ArticleFilter, limit, offset int) ([]model.Article, error)

	// CountArticles returns the number of articles matching filter.
	CountArticles(filter ArticleFilter) (int64, error)

	// UpdateArticle replaces title, body and author of the stored article
	// identified by article.ID. The slug is never altered. A non-nil
	// tagNames replaces the article's tag set; nil leaves it untouched.
	UpdateArticle(article *model.Article, tagNames []string) error

	// DeleteArticle removes an article by slug.
	DeleteArticle(slug string) error
}

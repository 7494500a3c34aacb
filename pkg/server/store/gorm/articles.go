package gorm

import (
	"gorm.io/gorm"

	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
	"conduit-in-go/pkg/slugify"
)

// Ensure ArticlesStore implements store.ArticlesStore
var _ store.ArticlesStore = (*ArticlesStore)(nil)

// ArticlesStore implements store.ArticlesStore using GORM
type ArticlesStore struct {
	db *gorm.DB
}

// NewArticlesStore creates a new ArticlesStore
func NewArticlesStore(db *gorm.DB) *ArticlesStore {
	return &ArticlesStore{db: db}
}

// CreateArticle persists a new article, deriving a unique slug from the
// title when none is set and resolving tag names with get-or-create
// semantics. The whole operation runs in one transaction.
func (s *ArticlesStore) CreateArticle(article *model.Article, tagNames []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if article.Slug == "" {
			slug, err := nextFreeSlug(tx, article.Title)
			if err != nil {
				return err
			}
			article.Slug = slug
		}

		tags, err := findOrCreateTags(tx, tagNames)
		if err != nil {
			return err
		}
		article.Tags = tags

		return tx.Create(article).Error
	})
	return translateError(err)
}

// nextFreeSlug derives a slug from title and probes for the first unused
// variant: base, base-2, base-3 and so on. Two concurrent creates may
// race to the same slug; the loser's insert fails the slug uniqueness
// constraint and surfaces as store.ErrConflict.
func nextFreeSlug(tx *gorm.DB, title string) (string, error) {
	base := slugify.Make(title)
	if base == "" {
		base = "article"
	}

	for n := 1; ; n++ {
		candidate := slugify.WithSuffix(base, n)

		var count int64
		err := tx.Model(&model.Article{}).Where("slug = ?", candidate).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}

// FetchArticle retrieves a single article by slug
func (s *ArticlesStore) FetchArticle(slug string) (*model.Article, error) {
	var article model.Article
	err := s.db.
		Preload("Author").
		Preload("Author.User").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &article, nil
}

// ListArticles returns articles matching filter, newest first
func (s *ArticlesStore) ListArticles(filter store.ArticleFilter, limit, offset int) ([]model.Article, error) {
	query := s.db.Model(&model.Article{}).
		Preload("Author").
		Preload("Author.User").
		Preload("Tags").
		Order("articles.created_at DESC")
	query = applyFilter(query, filter)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var articles []model.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, translateError(err)
	}
	return articles, nil
}

// CountArticles returns the number of articles matching filter
func (s *ArticlesStore) CountArticles(filter store.ArticleFilter) (int64, error) {
	query := applyFilter(s.db.Model(&model.Article{}), filter)

	var count int64
	if err := query.Distinct("articles.id").Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func applyFilter(query *gorm.DB, filter store.ArticleFilter) *gorm.DB {
	if filter.Tag != "" {
		query = query.
			Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.tag = ?", filter.Tag)
	}
	if filter.Author != "" {
		query = query.
			Joins("JOIN profiles ON profiles.id = articles.author_id").
			Joins("JOIN users ON users.id = profiles.user_id").
			Where("users.username = ?", filter.Author)
	}
	return query
}

// UpdateArticle replaces title, body and author of the stored article.
// The slug column is deliberately absent from the update set.
func (s *ArticlesStore) UpdateArticle(article *model.Article, tagNames []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Article{}).
			Where("id = ?", article.ID).
			Updates(map[string]interface{}{
				"title":     article.Title,
				"body":      article.Body,
				"author_id": article.AuthorID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}

		if tagNames != nil {
			tags, err := findOrCreateTags(tx, tagNames)
			if err != nil {
				return err
			}
			return tx.Model(article).Association("Tags").Replace(tags)
		}
		return nil
	})
	return translateError(err)
}

// DeleteArticle removes an article by slug
func (s *ArticlesStore) DeleteArticle(slug string) error {
	result := s.db.Where("slug = ?", slug).Delete(&model.Article{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

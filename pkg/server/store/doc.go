// Package store provides storage abstractions for the Conduit server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - ArticlesStore: article CRUD, filtering and slug resolution
//   - TagsStore: tag listing and get-or-create resolution
//   - UsersStore: user/profile lookup and the token credential store
//   - HealthStore: connectivity checks
//
// # Usage
//
//	articles := gorm.NewArticlesStore(db)
//	article, err := articles.FetchArticle("how-to-train-your-dragon")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store

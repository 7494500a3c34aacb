package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"conduit-in-go/pkg/audit"
	"conduit-in-go/pkg/authz"
	"conduit-in-go/pkg/config"
	"conduit-in-go/pkg/identity"
	"conduit-in-go/pkg/markdown"
	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server"
	"conduit-in-go/pkg/server/middleware"
	"conduit-in-go/pkg/server/store"
)

// AuthorResponse represents an article author in API responses
type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
}

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Author    AuthorResponse `json:"author"`
	Tags      []string       `json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ArticleListResponse represents the paginated listing envelope
type ArticleListResponse struct {
	Count   int64             `json:"count"`
	Results []ArticleResponse `json:"results"`
}

// ArticleRequest represents the body of create and update requests.
// Pointer fields distinguish absent from empty.
type ArticleRequest struct {
	Title  *string   `json:"title"`
	Body   *string   `json:"body"`
	Author *uint     `json:"author"`
	Tags   *[]string `json:"tags"`
}

// RegisterArticlesEndpoints registers the /articles endpoints
func RegisterArticlesEndpoints(s *server.Server) {
	articles := s.ArticlesStore
	users := s.UsersStore
	cfg := s.Config

	tokenMiddleware := middleware.NewTokenAuthenticator(users)

	// Reads are public. mux keeps matching subsequent routes on a method
	// mismatch, so the authenticated subrouter below picks up mutations
	// on the same paths.
	publicRouter := s.Router.PathPrefix("/articles").Subrouter()
	publicRouter.HandleFunc("", handleListArticles(articles, cfg)).Methods("GET")
	publicRouter.HandleFunc("/{slug}", handleGetArticle(articles)).Methods("GET")

	authedRouter := s.Router.PathPrefix("/articles").Subrouter()
	authedRouter.Use(tokenMiddleware.Middleware)
	authedRouter.HandleFunc("", handleCreateArticle(articles, users)).Methods("POST")
	authedRouter.HandleFunc("/{slug}", handleUpdateArticle(articles, users)).Methods("PUT")
	authedRouter.HandleFunc("/{slug}", handleDeleteArticle(articles)).Methods("DELETE")
}

func handleListArticles(articles store.ArticlesStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := store.ArticleFilter{
			Tag:    query.Get("tag"),
			Author: query.Get("author"),
		}

		limit := cfg.APIArticleListLimitDefault
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		if limit > cfg.APIArticleListLimitMax {
			limit = cfg.APIArticleListLimitMax
		}

		offset := 0
		if raw := query.Get("offset"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondWithError(w, http.StatusBadRequest, "offset must be a non-negative integer")
				return
			}
			offset = parsed
		}

		count, err := articles.CountArticles(filter)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list articles")
			return
		}

		results, err := articles.ListArticles(filter, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list articles")
			return
		}

		response := ArticleListResponse{
			Count:   count,
			Results: make([]ArticleResponse, 0, len(results)),
		}
		for i := range results {
			response.Results = append(response.Results, articleResponse(&results[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleGetArticle(articles store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := mux.Vars(r)["slug"]

		article, err := articles.FetchArticle(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}

		response := articleResponse(article)
		if r.URL.Query().Get("format") == "html" {
			rendered, err := markdown.Render(article.Body)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to render article")
				return
			}
			response.Body = rendered
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleCreateArticle(articles store.ArticlesStore, users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		var request ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		if request.Title == nil || strings.TrimSpace(*request.Title) == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}
		if request.Body == nil || strings.TrimSpace(*request.Body) == "" {
			respondWithError(w, http.StatusBadRequest, "body is required")
			return
		}

		authorID := caller.ProfileID
		if request.Author != nil {
			// Any existing profile is accepted as author, including one
			// the caller does not own. Only existence is checked.
			exists, err := users.ProfileExists(*request.Author)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve author")
				return
			}
			if !exists {
				respondWithError(w, http.StatusBadRequest, "author does not exist")
				return
			}
			authorID = *request.Author
		}

		article := model.Article{
			Title:    *request.Title,
			Body:     *request.Body,
			AuthorID: authorID,
		}

		var tagNames []string
		if request.Tags != nil {
			tagNames = *request.Tags
		}

		if err := articles.CreateArticle(&article, tagNames); err != nil {
			if errors.Is(err, store.ErrConflict) {
				respondWithError(w, http.StatusConflict, "Article already exists")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to create article")
			return
		}

		audit.Log(audit.ArticleEvent{
			Username:  caller.Username,
			ClientIP:  r.RemoteAddr,
			Operation: "create",
			Slug:      article.Slug,
			Allowed:   true,
		})

		created, err := articles.FetchArticle(article.Slug)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		respondWithJSON(w, http.StatusCreated, articleResponse(created))
	}
}

func handleUpdateArticle(articles store.ArticlesStore, users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		slug := mux.Vars(r)["slug"]
		article, err := articles.FetchArticle(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}

		if !authz.Allowed(caller, authz.ActionUpdate, *article) {
			audit.Log(audit.ArticleEvent{
				Username:     caller.Username,
				ClientIP:     r.RemoteAddr,
				Operation:    "update",
				Slug:         slug,
				Allowed:      false,
				ErrorMessage: "not the owner",
			})
			respondWithError(w, http.StatusForbidden, "You are not the owner of this article")
			return
		}

		var request ArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		if request.Title != nil {
			if strings.TrimSpace(*request.Title) == "" {
				respondWithError(w, http.StatusBadRequest, "title must not be blank")
				return
			}
			article.Title = *request.Title
		}
		if request.Body != nil {
			if strings.TrimSpace(*request.Body) == "" {
				respondWithError(w, http.StatusBadRequest, "body must not be blank")
				return
			}
			article.Body = *request.Body
		}
		if request.Author != nil {
			exists, err := users.ProfileExists(*request.Author)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve author")
				return
			}
			if !exists {
				respondWithError(w, http.StatusBadRequest, "author does not exist")
				return
			}
			article.AuthorID = *request.Author
		}

		var tagNames []string
		if request.Tags != nil {
			tagNames = *request.Tags
			if tagNames == nil {
				tagNames = []string{}
			}
		}

		if err := articles.UpdateArticle(article, tagNames); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to update article")
			return
		}

		audit.Log(audit.ArticleEvent{
			Username:  caller.Username,
			ClientIP:  r.RemoteAddr,
			Operation: "update",
			Slug:      slug,
			Allowed:   true,
		})

		updated, err := articles.FetchArticle(slug)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}
		respondWithJSON(w, http.StatusOK, articleResponse(updated))
	}
}

func handleDeleteArticle(articles store.ArticlesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		slug := mux.Vars(r)["slug"]
		article, err := articles.FetchArticle(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to fetch article")
			return
		}

		if !authz.Allowed(caller, authz.ActionDelete, *article) {
			audit.Log(audit.ArticleEvent{
				Username:     caller.Username,
				ClientIP:     r.RemoteAddr,
				Operation:    "delete",
				Slug:         slug,
				Allowed:      false,
				ErrorMessage: "not the owner",
			})
			respondWithError(w, http.StatusForbidden, "You are not the owner of this article")
			return
		}

		if err := articles.DeleteArticle(slug); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Article not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Failed to delete article")
			return
		}

		audit.Log(audit.ArticleEvent{
			Username:  caller.Username,
			ClientIP:  r.RemoteAddr,
			Operation: "delete",
			Slug:      slug,
			Allowed:   true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func articleResponse(article *model.Article) ArticleResponse {
	response := ArticleResponse{
		Slug:      article.Slug,
		Title:     article.Title,
		Body:      article.Body,
		Tags:      make([]string, 0, len(article.Tags)),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
	for _, tag := range article.Tags {
		response.Tags = append(response.Tags, tag.Tag)
	}
	if article.Author != nil {
		response.Author = AuthorResponse{
			ID:  article.Author.ID,
			Bio: article.Author.Bio,
		}
		if article.Author.User != nil {
			response.Author.Username = article.Author.User.Username
		}
	}
	return response
}

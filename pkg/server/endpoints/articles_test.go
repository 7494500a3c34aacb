package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"conduit-in-go/pkg/config"
	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
)

func testConfig() *config.Config {
	return &config.Config{
		APIArticleListLimitDefault: 20,
		APIArticleListLimitMax:     100,
	}
}

func testArticle() *model.Article {
	return &model.Article{
		ID:       1,
		Slug:     "how-to-train-your-dragon",
		Title:    "How to train your dragon",
		Body:     "Very carefully.",
		AuthorID: 3,
		Author: &model.Profile{
			ID:     3,
			UserID: 7,
			Bio:    "I work at statefarm",
			User:   &model.User{ID: 7, Username: "jake"},
		},
		Tags: []model.Tag{{ID: 1, Tag: "dragons", Slug: "dragons"}},
	}
}

func TestCreateArticle(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	articles.On("CreateArticle", mock.MatchedBy(func(a *model.Article) bool {
		return a.Title == "How to train your dragon" && a.AuthorID == uint(3)
	}), []string{"dragons"}).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Article).Slug = "how-to-train-your-dragon"
		}).
		Return(nil)
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)

	body := `{"title": "How to train your dragon", "body": "Very carefully.", "tags": ["dragons"]}`
	req := withIdentity(newRequest("POST", "/articles", body), testIdentity)
	rec := httptest.NewRecorder()

	handleCreateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response ArticleResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "how-to-train-your-dragon", response.Slug)
	assert.Equal(t, "jake", response.Author.Username)
	assert.Equal(t, []string{"dragons"}, response.Tags)

	articles.AssertExpectations(t)
	users.AssertNotCalled(t, "ProfileExists", mock.Anything)
}

func TestCreateArticleExplicitAuthor(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	users.On("ProfileExists", uint(9)).Return(true, nil)
	articles.On("CreateArticle", mock.MatchedBy(func(a *model.Article) bool {
		return a.AuthorID == uint(9)
	}), []string(nil)).
		Run(func(args mock.Arguments) {
			args.Get(0).(*model.Article).Slug = "how-to-train-your-dragon"
		}).
		Return(nil)
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)

	body := `{"title": "How to train your dragon", "body": "Very carefully.", "author": 9}`
	req := withIdentity(newRequest("POST", "/articles", body), testIdentity)
	rec := httptest.NewRecorder()

	handleCreateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	articles.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestCreateArticleUnknownAuthor(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()
	users.On("ProfileExists", uint(42)).Return(false, nil)

	body := `{"title": "How to train your dragon", "body": "Very carefully.", "author": 42}`
	req := withIdentity(newRequest("POST", "/articles", body), testIdentity)
	rec := httptest.NewRecorder()

	handleCreateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	articles.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything)
}

func TestCreateArticleValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{`},
		{"missing title", `{"body": "Very carefully."}`},
		{"blank title", `{"title": "   ", "body": "Very carefully."}`},
		{"missing body", `{"title": "How to train your dragon"}`},
		{"blank body", `{"title": "How to train your dragon", "body": ""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := NewMockArticlesStore()
			users := NewMockUsersStore()

			req := withIdentity(newRequest("POST", "/articles", tt.body), testIdentity)
			rec := httptest.NewRecorder()

			handleCreateArticle(articles, users)(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			articles.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateArticleUnauthenticated(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	body := `{"title": "How to train your dragon", "body": "Very carefully."}`
	req := newRequest("POST", "/articles", body)
	rec := httptest.NewRecorder()

	handleCreateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateArticleConflict(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	articles.On("CreateArticle", mock.Anything, []string(nil)).Return(store.ErrConflict)

	body := `{"title": "How to train your dragon", "body": "Very carefully."}`
	req := withIdentity(newRequest("POST", "/articles", body), testIdentity)
	rec := httptest.NewRecorder()

	handleCreateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetArticle(t *testing.T) {
	articles := NewMockArticlesStore()
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)

	req := withSlug(newRequest("GET", "/articles/how-to-train-your-dragon", ""), "how-to-train-your-dragon")
	rec := httptest.NewRecorder()

	handleGetArticle(articles)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response ArticleResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "How to train your dragon", response.Title)
	assert.Equal(t, "Very carefully.", response.Body)
	assert.Equal(t, uint(3), response.Author.ID)
}

func TestGetArticleNotFound(t *testing.T) {
	articles := NewMockArticlesStore()
	articles.On("FetchArticle", "no-such-slug").Return(nil, store.ErrNotFound)

	req := withSlug(newRequest("GET", "/articles/no-such-slug", ""), "no-such-slug")
	rec := httptest.NewRecorder()

	handleGetArticle(articles)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetArticleHTMLFormat(t *testing.T) {
	article := testArticle()
	article.Body = "# Training\n\nVery *carefully*."

	articles := NewMockArticlesStore()
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(article, nil)

	req := withSlug(newRequest("GET", "/articles/how-to-train-your-dragon?format=html", ""), "how-to-train-your-dragon")
	rec := httptest.NewRecorder()

	handleGetArticle(articles)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response ArticleResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Body, "<h1")
	assert.Contains(t, response.Body, "<em>carefully</em>")
}

func TestUpdateArticle(t *testing.T) {
	article := testArticle()
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	articles.On("FetchArticle", "how-to-train-your-dragon").Return(article, nil)
	articles.On("UpdateArticle", mock.MatchedBy(func(a *model.Article) bool {
		return a.Title == "How to train your dragon 2" && a.Slug == "how-to-train-your-dragon"
	}), []string(nil)).Return(nil)

	body := `{"title": "How to train your dragon 2"}`
	req := withIdentity(withSlug(newRequest("PUT", "/articles/how-to-train-your-dragon", body), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleUpdateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	articles.AssertExpectations(t)
}

func TestUpdateArticleNotOwner(t *testing.T) {
	article := testArticle()
	article.AuthorID = 99

	articles := NewMockArticlesStore()
	users := NewMockUsersStore()
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(article, nil)

	body := `{"title": "Hijacked"}`
	req := withIdentity(withSlug(newRequest("PUT", "/articles/how-to-train-your-dragon", body), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleUpdateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	articles.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything)
}

func TestUpdateArticleNotFound(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()
	articles.On("FetchArticle", "no-such-slug").Return(nil, store.ErrNotFound)

	body := `{"title": "Anything"}`
	req := withIdentity(withSlug(newRequest("PUT", "/articles/no-such-slug", body), "no-such-slug"), testIdentity)
	rec := httptest.NewRecorder()

	handleUpdateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateArticleBlankTitle(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)

	body := `{"title": "  "}`
	req := withIdentity(withSlug(newRequest("PUT", "/articles/how-to-train-your-dragon", body), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleUpdateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	articles.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything)
}

func TestUpdateArticleReplacesTags(t *testing.T) {
	articles := NewMockArticlesStore()
	users := NewMockUsersStore()

	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)
	articles.On("UpdateArticle", mock.Anything, []string{"reptiles"}).Return(nil)

	body := `{"tags": ["reptiles"]}`
	req := withIdentity(withSlug(newRequest("PUT", "/articles/how-to-train-your-dragon", body), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleUpdateArticle(articles, users)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	articles.AssertExpectations(t)
}

func TestDeleteArticle(t *testing.T) {
	articles := NewMockArticlesStore()

	articles.On("FetchArticle", "how-to-train-your-dragon").Return(testArticle(), nil)
	articles.On("DeleteArticle", "how-to-train-your-dragon").Return(nil)

	req := withIdentity(withSlug(newRequest("DELETE", "/articles/how-to-train-your-dragon", ""), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleDeleteArticle(articles)(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	articles.AssertExpectations(t)
}

func TestDeleteArticleNotOwner(t *testing.T) {
	article := testArticle()
	article.AuthorID = 99

	articles := NewMockArticlesStore()
	articles.On("FetchArticle", "how-to-train-your-dragon").Return(article, nil)

	req := withIdentity(withSlug(newRequest("DELETE", "/articles/how-to-train-your-dragon", ""), "how-to-train-your-dragon"), testIdentity)
	rec := httptest.NewRecorder()

	handleDeleteArticle(articles)(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	articles.AssertNotCalled(t, "DeleteArticle", mock.Anything)
}

func TestListArticles(t *testing.T) {
	articles := NewMockArticlesStore()

	articles.On("CountArticles", store.ArticleFilter{}).Return(int64(1), nil)
	articles.On("ListArticles", store.ArticleFilter{}, 20, 0).
		Return([]model.Article{*testArticle()}, nil)

	req := newRequest("GET", "/articles", "")
	rec := httptest.NewRecorder()

	handleListArticles(articles, testConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response ArticleListResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Count)
	if assert.Len(t, response.Results, 1) {
		assert.Equal(t, "how-to-train-your-dragon", response.Results[0].Slug)
	}
	articles.AssertExpectations(t)
}

func TestListArticlesFilters(t *testing.T) {
	filter := store.ArticleFilter{Tag: "dragons", Author: "jake"}

	articles := NewMockArticlesStore()
	articles.On("CountArticles", filter).Return(int64(0), nil)
	articles.On("ListArticles", filter, 20, 0).Return([]model.Article{}, nil)

	req := newRequest("GET", "/articles?tag=dragons&author=jake", "")
	rec := httptest.NewRecorder()

	handleListArticles(articles, testConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	articles.AssertExpectations(t)
}

func TestListArticlesLimitClamped(t *testing.T) {
	articles := NewMockArticlesStore()
	articles.On("CountArticles", store.ArticleFilter{}).Return(int64(0), nil)
	articles.On("ListArticles", store.ArticleFilter{}, 100, 40).Return([]model.Article{}, nil)

	req := newRequest("GET", "/articles?limit=1000&offset=40", "")
	rec := httptest.NewRecorder()

	handleListArticles(articles, testConfig())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	articles.AssertExpectations(t)
}

func TestListArticlesInvalidPagination(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric limit", "/articles?limit=abc"},
		{"zero limit", "/articles?limit=0"},
		{"negative offset", "/articles?offset=-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := NewMockArticlesStore()

			req := newRequest("GET", tt.target, "")
			rec := httptest.NewRecorder()

			handleListArticles(articles, testConfig())(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			articles.AssertNotCalled(t, "ListArticles", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

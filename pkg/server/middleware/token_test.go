package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"conduit-in-go/pkg/identity"
	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
)

type mockUsersStore struct {
	mock.Mock
}

func (m *mockUsersStore) FindByToken(token string) (*model.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUsersStore) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUsersStore) ProfileExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func TestTokenAuthenticatorMissingHeader(t *testing.T) {
	users := &mockUsersStore{}
	authn := NewTokenAuthenticator(users)

	req := httptest.NewRequest("POST", "/articles", nil)
	rec := httptest.NewRecorder()

	authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization missing")
}

func TestTokenAuthenticatorMalformedHeader(t *testing.T) {
	users := &mockUsersStore{}
	authn := NewTokenAuthenticator(users)

	req := httptest.NewRequest("POST", "/articles", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	rec := httptest.NewRecorder()

	authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Malformed authorization header")
}

func TestTokenAuthenticatorUnknownToken(t *testing.T) {
	users := &mockUsersStore{}
	users.On("FindByToken", "deadbeef").Return(nil, store.ErrNotFound)
	authn := NewTokenAuthenticator(users)

	req := httptest.NewRequest("POST", "/articles", nil)
	req.Header.Set("Authorization", "Token deadbeef")
	rec := httptest.NewRecorder()

	authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid authorization token")
	users.AssertExpectations(t)
}

func TestTokenAuthenticatorValidToken(t *testing.T) {
	user := &model.User{
		ID:       7,
		Username: "jake",
		Token:    "abc123",
		Profile:  &model.Profile{ID: 3, UserID: 7},
	}
	users := &mockUsersStore{}
	users.On("FindByToken", "abc123").Return(user, nil)
	authn := NewTokenAuthenticator(users)

	req := httptest.NewRequest("POST", "/articles", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	var got *identity.Identity
	authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = identity.Get(r.Context())
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, got) {
		assert.Equal(t, uint(7), got.UserID)
		assert.Equal(t, uint(3), got.ProfileID)
		assert.Equal(t, "jake", got.Username)
	}
	users.AssertExpectations(t)
}

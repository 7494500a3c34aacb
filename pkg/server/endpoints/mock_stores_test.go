package endpoints

import (
	"github.com/stretchr/testify/mock"

	"conduit-in-go/pkg/model"
	"conduit-in-go/pkg/server/store"
)

// MockArticlesStore implements store.ArticlesStore for testing using testify/mock
type MockArticlesStore struct {
	mock.Mock
}

func NewMockArticlesStore() *MockArticlesStore {
	return &MockArticlesStore{}
}

func (m *MockArticlesStore) CreateArticle(article *model.Article, tagNames []string) error {
	args := m.Called(article, tagNames)
	return args.Error(0)
}

func (m *MockArticlesStore) FetchArticle(slug string) (*model.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticlesStore) ListArticles(filter store.ArticleFilter, limit, offset int) ([]model.Article, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func (m *MockArticlesStore) CountArticles(filter store.ArticleFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticlesStore) UpdateArticle(article *model.Article, tagNames []string) error {
	args := m.Called(article, tagNames)
	return args.Error(0)
}

func (m *MockArticlesStore) DeleteArticle(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

// MockTagsStore implements store.TagsStore for testing using testify/mock
type MockTagsStore struct {
	mock.Mock
}

func NewMockTagsStore() *MockTagsStore {
	return &MockTagsStore{}
}

func (m *MockTagsStore) FindOrCreateTags(names []string) ([]model.Tag, error) {
	args := m.Called(names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagsStore) ListTags() ([]model.Tag, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) FindByToken(token string) (*model.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) ProfileExists(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}

package endpoints

import (
	"github.com/stretchr/testify/mock"

	"catalogd/pkg/server/store"
)

// MockCategoriesStore implements store.CategoriesStore for testing using testify/mock
type MockCategoriesStore struct {
	mock.Mock
}

func NewMockCategoriesStore() *MockCategoriesStore {
	return &MockCategoriesStore{}
}

func (m *MockCategoriesStore) ListCategories() ([]store.Category, error) {
	args := m.Called()
	return args.Get(0).([]store.Category), args.Error(1)
}

func (m *MockCategoriesStore) FetchCategory(id int64) (*store.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *MockCategoriesStore) CreateCategory(title string) (*store.Category, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *MockCategoriesStore) UpdateCategory(id int64, title string) (*store.Category, error) {
	args := m.Called(id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Category), args.Error(1)
}

func (m *MockCategoriesStore) DeleteCategory(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockComponentsStore implements store.ComponentsStore for testing using testify/mock
type MockComponentsStore struct {
	mock.Mock
}

func NewMockComponentsStore() *MockComponentsStore {
	return &MockComponentsStore{}
}

func (m *MockComponentsStore) ListComponents() ([]store.Component, error) {
	args := m.Called()
	return args.Get(0).([]store.Component), args.Error(1)
}

func (m *MockComponentsStore) FetchComponent(id int64) (*store.Component, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Component), args.Error(1)
}

func (m *MockComponentsStore) FetchComponentByTitle(title string) (*store.Component, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Component), args.Error(1)
}

func (m *MockComponentsStore) ComponentExists(title string) (bool, error) {
	args := m.Called(title)
	return args.Bool(0), args.Error(1)
}

func (m *MockComponentsStore) CreateComponent(title, description string, categoryID int64) (*store.Component, error) {
	args := m.Called(title, description, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Component), args.Error(1)
}

func (m *MockComponentsStore) UpdateComponent(id int64, title, description string, categoryID int64) (*store.Component, error) {
	args := m.Called(id, title, description, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Component), args.Error(1)
}

func (m *MockComponentsStore) DeleteComponent(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockActionLogStore implements store.ActionLogStore for testing using testify/mock
type MockActionLogStore struct {
	mock.Mock
}

func NewMockActionLogStore() *MockActionLogStore {
	return &MockActionLogStore{}
}

func (m *MockActionLogStore) RecentEntries(limit int) ([]store.LogEntry, error) {
	args := m.Called(limit)
	return args.Get(0).([]store.LogEntry), args.Error(1)
}

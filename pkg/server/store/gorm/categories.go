package gorm

import (
	"errors"

	"gorm.io/gorm"

	"catalogd/pkg/model"
	"catalogd/pkg/server/store"
)

// Ensure CategoriesStore implements store.CategoriesStore
var _ store.CategoriesStore = (*CategoriesStore)(nil)

// CategoriesStore implements store.CategoriesStore using GORM
type CategoriesStore struct {
	db *gorm.DB
}

// NewCategoriesStore creates a new CategoriesStore
func NewCategoriesStore(db *gorm.DB) *CategoriesStore {
	return &CategoriesStore{db: db}
}

// ListCategories returns all categories ordered by title
func (s *CategoriesStore) ListCategories() ([]store.Category, error) {
	var rows []model.Category
	if err := s.db.Order("title").Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]store.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, store.Category{ID: row.ID, Title: row.Title})
	}
	return categories, nil
}

// FetchCategory retrieves a single category by ID
func (s *CategoriesStore) FetchCategory(id int64) (*store.Category, error) {
	var row model.Category
	err := s.db.First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}
	return &store.Category{ID: row.ID, Title: row.Title}, nil
}

// CreateCategory creates a category and returns it
func (s *CategoriesStore) CreateCategory(title string) (*store.Category, error) {
	row := model.Category{Title: title}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &store.Category{ID: row.ID, Title: row.Title}, nil
}

// UpdateCategory renames a category
func (s *CategoriesStore) UpdateCategory(id int64, title string) (*store.Category, error) {
	var row model.Category
	err := s.db.First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}

	row.Title = title
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &store.Category{ID: row.ID, Title: row.Title}, nil
}

// DeleteCategory deletes a category; components cascade via the schema
func (s *CategoriesStore) DeleteCategory(id int64) error {
	result := s.db.Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

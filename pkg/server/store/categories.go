package store

import "errors"

// ErrCategoryNotFound is returned when a category does not exist
var ErrCategoryNotFound = errors.New("category not found")

// Category represents a catalog category
type Category struct {
	ID    int64
	Title string
}

// CategoriesStore abstracts category storage operations
type CategoriesStore interface {
	// ListCategories returns all categories ordered by title
	ListCategories() ([]Category, error)

	// FetchCategory retrieves a single category by ID
	FetchCategory(id int64) (*Category, error)

	// CreateCategory creates a category and returns it
	CreateCategory(title string) (*Category, error)

	// UpdateCategory renames a category
	UpdateCategory(id int64, title string) (*Category, error)

	// DeleteCategory deletes a category; its components cascade in the schema
	DeleteCategory(id int64) error
}

package store

import "errors"

// ErrComponentNotFound is returned when a component does not exist
var ErrComponentNotFound = errors.New("component not found")

// Component represents a catalog component with its category
type Component struct {
	ID          int64
	Title       string
	Description string
	Category    Category
}

// ComponentsStore abstracts component storage operations
type ComponentsStore interface {
	// ListComponents returns all components with their categories, ordered by title
	ListComponents() ([]Component, error)

	// FetchComponent retrieves a single component by ID
	FetchComponent(id int64) (*Component, error)

	// FetchComponentByTitle retrieves the first component with the given title
	FetchComponentByTitle(title string) (*Component, error)

	// ComponentExists reports whether any component with the given title exists
	ComponentExists(title string) (bool, error)

	// CreateComponent creates a component in an existing category
	CreateComponent(title, description string, categoryID int64) (*Component, error)

	// UpdateComponent updates a component's fields
	UpdateComponent(id int64, title, description string, categoryID int64) (*Component, error)

	// DeleteComponent deletes a component
	DeleteComponent(id int64) error
}

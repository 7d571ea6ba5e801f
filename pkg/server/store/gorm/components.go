package gorm

import (
	"errors"

	"gorm.io/gorm"

	"catalogd/pkg/model"
	"catalogd/pkg/server/store"
)

// Ensure ComponentsStore implements store.ComponentsStore
var _ store.ComponentsStore = (*ComponentsStore)(nil)

// ComponentsStore implements store.ComponentsStore using GORM
type ComponentsStore struct {
	db *gorm.DB
}

// NewComponentsStore creates a new ComponentsStore
func NewComponentsStore(db *gorm.DB) *ComponentsStore {
	return &ComponentsStore{db: db}
}

// componentRow carries a component joined with its category
type componentRow struct {
	ID            int64
	Title         string
	Description   string
	CategoryID    int64
	CategoryTitle string
}

const componentSelect = `
	SELECT c.id, c.title, c.description, c.category_id, cat.title AS category_title
	FROM components c
	JOIN categories cat ON cat.id = c.category_id
`

func (r componentRow) toStore() store.Component {
	return store.Component{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    store.Category{ID: r.CategoryID, Title: r.CategoryTitle},
	}
}

// ListComponents returns all components with their categories, ordered by title
func (s *ComponentsStore) ListComponents() ([]store.Component, error) {
	var rows []componentRow
	if err := s.db.Raw(componentSelect + ` ORDER BY c.title`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	components := make([]store.Component, 0, len(rows))
	for _, row := range rows {
		components = append(components, row.toStore())
	}
	return components, nil
}

// FetchComponent retrieves a single component by ID
func (s *ComponentsStore) FetchComponent(id int64) (*store.Component, error) {
	var row componentRow
	result := s.db.Raw(componentSelect+` WHERE c.id = ?`, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrComponentNotFound
	}

	component := row.toStore()
	return &component, nil
}

// FetchComponentByTitle retrieves the first component with the given title
func (s *ComponentsStore) FetchComponentByTitle(title string) (*store.Component, error) {
	var row componentRow
	result := s.db.Raw(componentSelect+` WHERE c.title = ? ORDER BY c.id LIMIT 1`, title).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrComponentNotFound
	}

	component := row.toStore()
	return &component, nil
}

// ComponentExists reports whether any component with the given title exists
func (s *ComponentsStore) ComponentExists(title string) (bool, error) {
	var count int64
	err := s.db.Model(&model.Component{}).Where("title = ?", title).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateComponent creates a component in an existing category
func (s *ComponentsStore) CreateComponent(title, description string, categoryID int64) (*store.Component, error) {
	var category model.Category
	err := s.db.First(&category, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}

	row := model.Component{Title: title, Description: description, CategoryID: categoryID}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &store.Component{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    store.Category{ID: category.ID, Title: category.Title},
	}, nil
}

// UpdateComponent updates a component's fields
func (s *ComponentsStore) UpdateComponent(id int64, title, description string, categoryID int64) (*store.Component, error) {
	var row model.Component
	err := s.db.First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrComponentNotFound
		}
		return nil, err
	}

	var category model.Category
	err = s.db.First(&category, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, err
	}

	row.Title = title
	row.Description = description
	row.CategoryID = categoryID
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}

	return &store.Component{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Category:    store.Category{ID: category.ID, Title: category.Title},
	}, nil
}

// DeleteComponent deletes a component
func (s *ComponentsStore) DeleteComponent(id int64) error {
	result := s.db.Delete(&model.Component{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrComponentNotFound
	}
	return nil
}

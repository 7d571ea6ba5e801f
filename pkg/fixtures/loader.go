package fixtures

import (
	"fmt"
	"io"

	"catalogd/pkg/server/store"
)

// Stats summarizes what a fixture load changed
type Stats struct {
	CategoriesCreated int
	ComponentsCreated int
	ComponentsSkipped int
}

// Loader applies fixtures to the catalog stores. Loading is idempotent:
// existing categories are reused and components are matched by title.
type Loader struct {
	categories store.CategoriesStore
	components store.ComponentsStore
}

// NewLoader creates a fixture loader
func NewLoader(categories store.CategoriesStore, components store.ComponentsStore) *Loader {
	return &Loader{categories: categories, components: components}
}

// Load applies a parsed fixture
func (l *Loader) Load(fixture Fixture) (*Stats, error) {
	existing, err := l.categories.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categoryIDs := make(map[string]int64, len(existing))
	for _, category := range existing {
		categoryIDs[category.Title] = category.ID
	}

	stats := &Stats{}
	for _, entry := range fixture {
		categoryID, ok := categoryIDs[entry.Category]
		if !ok {
			created, err := l.categories.CreateCategory(entry.Category)
			if err != nil {
				return stats, fmt.Errorf("failed to create category %q: %w", entry.Category, err)
			}
			categoryID = created.ID
			categoryIDs[entry.Category] = categoryID
			stats.CategoriesCreated++
		}

		for _, component := range entry.Components {
			exists, err := l.components.ComponentExists(component.Title)
			if err != nil {
				return stats, fmt.Errorf("failed to check component %q: %w", component.Title, err)
			}
			if exists {
				stats.ComponentsSkipped++
				continue
			}

			_, err = l.components.CreateComponent(component.Title, component.Description, categoryID)
			if err != nil {
				return stats, fmt.Errorf("failed to create component %q: %w", component.Title, err)
			}
			stats.ComponentsCreated++
		}
	}

	return stats, nil
}

// LoadFromReader parses and applies a fixture document
func (l *Loader) LoadFromReader(r io.Reader) (*Stats, error) {
	fixture, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return l.Load(fixture)
}

package fixtures

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CategoryFixture is one category with its components
type CategoryFixture struct {
	Category   string             `yaml:"category"`
	Components []ComponentFixture `yaml:"components,omitempty"`
}

// ComponentFixture is a component entry inside a category
type ComponentFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML handles both scalar (just the title) and mapping forms
func (c *ComponentFixture) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Title = value.Value
		return nil
	}
	type componentAlias ComponentFixture
	return value.Decode((*componentAlias)(c))
}

// Fixture is a full fixture document: a list of categories
type Fixture []CategoryFixture

// Parse reads a YAML fixture document
func Parse(r io.Reader) (Fixture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	for i, category := range fixture {
		if category.Category == "" {
			return nil, fmt.Errorf("fixture entry %d has no category title", i)
		}
		for j, component := range category.Components {
			if component.Title == "" {
				return nil, fmt.Errorf("component %d in category %q has no title", j, category.Category)
			}
		}
	}

	return fixture, nil
}

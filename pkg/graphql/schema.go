package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"catalogd/pkg/server/store"
)

// Schema is the catalog GraphQL schema bound to its stores
type Schema struct {
	schema graphql.Schema
}

// NewSchema builds the catalog schema.
//
// Query surface:
//
//	allCategories: [Category]
//	allComponents: [Component]
//	componentByName(name: String!): Component
func NewSchema(categories store.CategoriesStore, components store.ComponentsStore) (*Schema, error) {
	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categoryFromSource(p.Source).Title, nil
				},
			},
		},
	})

	componentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Component",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return componentFromSource(p.Source).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return componentFromSource(p.Source).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return componentFromSource(p.Source).Description, nil
				},
			},
			"category": &graphql.Field{
				Type: graphql.NewNonNull(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return componentFromSource(p.Source).Category, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allCategories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return categories.ListCategories()
				},
			},
			"allComponents": &graphql.Field{
				Type: graphql.NewList(componentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return components.ListComponents()
				},
			},
			"componentByName": &graphql.Field{
				Type: componentType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)

					component, err := components.FetchComponentByTitle(name)
					if err != nil {
						// A missing component resolves to null, not an error
						if errors.Is(err, store.ErrComponentNotFound) {
							return nil, nil
						}
						return nil, err
					}
					return *component, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Execute runs a GraphQL request against the schema
func (s *Schema) Execute(query string, variables map[string]interface{}, operationName string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  query,
		VariableValues: variables,
		OperationName:  operationName,
	})
}

func categoryFromSource(source interface{}) store.Category {
	switch v := source.(type) {
	case store.Category:
		return v
	case *store.Category:
		return *v
	}
	return store.Category{}
}

func componentFromSource(source interface{}) store.Component {
	switch v := source.(type) {
	case store.Component:
		return v
	case *store.Component:
		return *v
	}
	return store.Component{}
}

// Package graphql defines the catalog's GraphQL schema and its resolvers.
//
// Resolvers delegate straight to the store interfaces; there is no batching
// or caching layer. The schema is read-only: writes go through the admin API.
package graphql

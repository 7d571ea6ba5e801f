// Package model defines the database models for the catalog application.
//
// This package contains GORM models that map to the catalog database schema.
// The schema is managed by the SQL migrations under db/migrations.
//
// # Core Models
//
//   - Category: a named grouping of components
//   - Component: a catalog entry belonging to exactly one category
//   - ActionLogEntry: a record of an admin mutation (add/change/delete)
//
// Deleting a category cascades to its components; the constraint lives in the
// database schema, not in application code.
package model

// Package db carries the embedded SQL migrations for the catalog schema.
package db

import "embed"

// Migrations holds the SQL migration files applied by "catalogctl db migrate"
//
//go:embed migrations
var Migrations embed.FS

// Package db establishes GORM database connections from application config.
package db

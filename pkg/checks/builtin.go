package checks

import (
	"context"
	"fmt"

	"catalogd/pkg/server/store"
)

// DatabaseConnectivity returns a check that verifies the database answers
func DatabaseConnectivity(health store.HealthStore) CheckFunc {
	return func(ctx context.Context) []Error {
		if err := health.CheckConnectivity(); err != nil {
			return []Error{{
				ID:      "database.E001",
				Message: fmt.Sprintf("database connectivity check failed: %v", err),
				Hint:    "verify DATABASE_URL or the DB_* settings and that the database is accepting connections",
			}}
		}
		return nil
	}
}

// RequiredComponent returns a check that asserts a component row with the
// given title exists. Emits components.E001 when it is missing.
func RequiredComponent(components store.ComponentsStore, title string) CheckFunc {
	return func(ctx context.Context) []Error {
		exists, err := components.ComponentExists(title)
		if err != nil {
			return []Error{{
				ID:      "components.E001",
				Message: fmt.Sprintf("could not query for required component %q: %v", title, err),
			}}
		}
		if !exists {
			return []Error{{
				ID:      "components.E001",
				Message: fmt.Sprintf("required component %q is missing", title),
				Hint:    fmt.Sprintf("load a fixture or create the component titled %q via the admin API", title),
			}}
		}
		return nil
	}
}

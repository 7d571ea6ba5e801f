// Package store defines storage abstractions for the catalog server.
//
// Interfaces here are implemented by the gorm subpackage for production use
// and by testify mocks in tests. Endpoints and resolvers depend only on these
// interfaces, never on the database directly.
package store

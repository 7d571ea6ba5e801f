package endpoints

import (
	"io"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"catalogd/pkg/actionlog"
	"catalogd/pkg/config"
	"catalogd/pkg/graphql"
	"catalogd/pkg/server"
	"catalogd/pkg/server/middleware"
	"catalogd/pkg/server/store"
)

const testSecretKey = "test-secret-key"

// newTestServer builds a server around mock stores, without a database
func newTestServer(t *testing.T, debug bool, categories store.CategoriesStore, components store.ComponentsStore, entries store.ActionLogStore) *server.Server {
	t.Helper()

	schema, err := graphql.NewSchema(categories, components)
	if err != nil {
		t.Fatalf("failed to build schema: %v", err)
	}

	logger := actionlog.NewLogger()
	logger.SetWriter(io.Discard)

	cfg := &config.Config{
		SecretKey: testSecretKey,
		Debug:     debug,
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "hunter2",
			TokenTTL: time.Hour,
		},
	}

	return &server.Server{
		Router:          mux.NewRouter().UseEncodedPath(),
		Config:          cfg,
		CategoriesStore: categories,
		ComponentsStore: components,
		ActionLogStore:  entries,
		Schema:          schema,
		Recorder:        actionlog.NewRecorder(logger, nil),
		Auth:            middleware.NewTokenAuthenticator(testSecretKey),
	}
}

// adminAuthHeader issues a valid bearer token for the test server
func adminAuthHeader(t *testing.T, s *server.Server) string {
	t.Helper()

	token, err := s.Auth.IssueToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return "Bearer " + token
}

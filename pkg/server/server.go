package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"catalogd/pkg/actionlog"
	"catalogd/pkg/config"
	"catalogd/pkg/graphql"
	"catalogd/pkg/server/middleware"
	"catalogd/pkg/server/store"
	gormstore "catalogd/pkg/server/store/gorm"
)

// Server is the catalog application server
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	CategoriesStore store.CategoriesStore
	ComponentsStore store.ComponentsStore
	HealthStore     store.HealthStore
	ActionLogStore  store.ActionLogStore

	Schema   *graphql.Schema
	Recorder *actionlog.Recorder
	Auth     *middleware.TokenAuthenticator

	// ServeStatic and ServeMedia enable file serving from the configured roots
	ServeStatic bool
	ServeMedia  bool

	srv *http.Server
}

// NewServer creates the application server with gorm-backed stores
func NewServer(cfg *config.Config, db *gorm.DB, recorder *actionlog.Recorder) (*Server, error) {
	categoriesStore := gormstore.NewCategoriesStore(db)
	componentsStore := gormstore.NewComponentsStore(db)

	schema, err := graphql.NewSchema(categoriesStore, componentsStore)
	if err != nil {
		return nil, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}

	if recorder == nil {
		recorder = actionlog.NewRecorder(nil, nil)
	}

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:          router,
		DB:              db,
		Config:          cfg,
		CategoriesStore: categoriesStore,
		ComponentsStore: componentsStore,
		HealthStore:     gormstore.NewHealthStore(db),
		ActionLogStore:  gormstore.NewActionLogStore(db),
		Schema:          schema,
		Recorder:        recorder,
		Auth:            middleware.NewTokenAuthenticator(cfg.SecretKey),
		srv:             srv,
	}, nil
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

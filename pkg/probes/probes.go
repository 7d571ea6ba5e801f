package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"catalogd/pkg/checks"
)

// Response is the probe response body
type Response struct {
	Status string         `json:"status"`
	Errors []checks.Error `json:"errors,omitempty"`
}

// Server is the probe listener. It runs on its own port so the orchestrator
// can reach it even when the application port is saturated.
type Server struct {
	registry *checks.Registry
	started  atomic.Bool
	srv      *http.Server
}

// NewServer creates a probe server backed by the given check registry
func NewServer(host string, port int, registry *checks.Registry) *Server {
	if registry == nil {
		registry = checks.DefaultRegistry
	}

	s := &Server{registry: registry}

	router := mux.NewRouter()
	router.HandleFunc("/alive", s.handleAlive).Methods("GET")
	router.HandleFunc("/ready", s.handleReady).Methods("GET")
	router.HandleFunc("/startup", s.handleStartup).Methods("GET")

	s.srv = &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf("%s:%d", host, port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return s
}

// MarkStarted flips the startup probe to success. Called once migrations,
// management commands and the first check pass have completed.
func (s *Server) MarkStarted() {
	s.started.Store(true)
}

// Handler exposes the probe routes (for tests)
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start runs the probe server until it is shut down
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the probe server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleAlive(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, http.StatusOK, Response{Status: "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	failures := s.registry.Run(r.Context())
	if len(failures) > 0 {
		writeProbe(w, http.StatusServiceUnavailable, Response{Status: "error", Errors: failures})
		return
	}
	writeProbe(w, http.StatusOK, Response{Status: "ok"})
}

func (s *Server) handleStartup(w http.ResponseWriter, r *http.Request) {
	if !s.started.Load() {
		writeProbe(w, http.StatusBadRequest, Response{Status: "starting"})
		return
	}
	writeProbe(w, http.StatusOK, Response{Status: "ok"})
}

func writeProbe(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

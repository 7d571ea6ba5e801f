package checks

import (
	"context"
	"fmt"
	"sync"
)

// Error is a structured system-check failure.
// IDs are stable, dotted identifiers like "components.E001".
type Error struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ID, e.Message)
}

// CheckFunc runs a single system check and returns its failures, if any.
// Returning an empty slice (or nil) means the check passed.
type CheckFunc func(ctx context.Context) []Error

// Registry holds named system checks in registration order
type Registry struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
	order  []string
}

// NewRegistry creates a new check registry
func NewRegistry() *Registry {
	return &Registry{
		checks: make(map[string]CheckFunc),
	}
}

// Register adds a check to the registry. Re-registering a name replaces the
// previous check but keeps its position.
func (r *Registry) Register(name string, check CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checks[name]; !ok {
		r.order = append(r.order, name)
	}
	r.checks[name] = check
}

// Unregister removes a check by name
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checks[name]; !ok {
		return
	}
	delete(r.checks, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered check names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Run executes all registered checks in order and collects their failures
func (r *Registry) Run(ctx context.Context) []Error {
	r.mu.RLock()
	funcs := make([]CheckFunc, 0, len(r.order))
	for _, name := range r.order {
		funcs = append(funcs, r.checks[name])
	}
	r.mu.RUnlock()

	var failures []Error
	for _, check := range funcs {
		failures = append(failures, check(ctx)...)
	}
	return failures
}

// DefaultRegistry is the global check registry
var DefaultRegistry = NewRegistry()

// Register adds a check to the default registry
func Register(name string, check CheckFunc) {
	DefaultRegistry.Register(name, check)
}

// Run executes all checks in the default registry
func Run(ctx context.Context) []Error {
	return DefaultRegistry.Run(ctx)
}

package endpoints

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"catalogd/pkg/actionlog"
	"catalogd/pkg/config"
	"catalogd/pkg/server"
	"catalogd/pkg/server/middleware"
	"catalogd/pkg/server/store"
)

// LoginRequest is the POST /admin/login body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued admin token
type LoginResponse struct {
	Token string `json:"token"`
}

// CategoryRequest is the create/update body for categories
type CategoryRequest struct {
	Title string `json:"title"`
}

// ComponentRequest is the create/update body for components
type ComponentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
}

// CategoryResponse is the JSON shape of a category
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ComponentResponse is the JSON shape of a component
type ComponentResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
}

// LogEntryResponse is the JSON shape of an action log entry
type LogEntryResponse struct {
	ID         int64     `json:"id"`
	ActionTime time.Time `json:"action_time"`
	Username   string    `json:"username"`
	ObjectType string    `json:"object_type"`
	ObjectID   int64     `json:"object_id"`
	ObjectRepr string    `json:"object_repr"`
	ActionFlag int       `json:"action_flag"`
	Message    string    `json:"message"`
}

func categoryResponse(c *store.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Title: c.Title}
}

func componentResponse(c *store.Component) ComponentResponse {
	return ComponentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    CategoryResponse{ID: c.Category.ID, Title: c.Category.Title},
	}
}

// RegisterAdminEndpoints registers the admin API.
// /admin/login is public; everything else requires a bearer token.
func RegisterAdminEndpoints(s *server.Server) {
	// Login must be registered before the protected subrouter so it is
	// matched without the auth middleware.
	s.Router.HandleFunc("/admin/login", handleAdminLogin(s.Auth, s.Config)).Methods("POST")

	adminRouter := s.Router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(s.Auth.Middleware)

	adminRouter.HandleFunc("/categories", handleListCategories(s.CategoriesStore)).Methods("GET")
	adminRouter.HandleFunc("/categories", handleCreateCategory(s.CategoriesStore, s.Recorder)).Methods("POST")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", handleGetCategory(s.CategoriesStore)).Methods("GET")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", handleUpdateCategory(s.CategoriesStore, s.Recorder)).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id:[0-9]+}", handleDeleteCategory(s.CategoriesStore, s.Recorder)).Methods("DELETE")

	adminRouter.HandleFunc("/components", handleListComponents(s.ComponentsStore)).Methods("GET")
	adminRouter.HandleFunc("/components", handleCreateComponent(s.ComponentsStore, s.Recorder)).Methods("POST")
	adminRouter.HandleFunc("/components/{id:[0-9]+}", handleGetComponent(s.ComponentsStore)).Methods("GET")
	adminRouter.HandleFunc("/components/{id:[0-9]+}", handleUpdateComponent(s.ComponentsStore, s.Recorder)).Methods("PUT")
	adminRouter.HandleFunc("/components/{id:[0-9]+}", handleDeleteComponent(s.ComponentsStore, s.Recorder)).Methods("DELETE")

	adminRouter.HandleFunc("/log", handleActionLog(s.ActionLogStore)).Methods("GET")
}

func handleAdminLogin(auth *middleware.TokenAuthenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.Admin.Password == "" {
			respondWithError(w, http.StatusForbidden, "admin login is disabled: ADMIN_PASSWORD is not configured")
			return
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(cfg.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.Admin.Password)) == 1
		if !userOK || !passOK {
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := auth.IssueToken(req.Username, cfg.Admin.TokenTTL)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}

		respondWithJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

func handleListCategories(categories store.CategoriesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := categories.ListCategories()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]CategoryResponse, 0, len(list))
		for i := range list {
			out = append(out, categoryResponse(&list[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetCategory(categories store.CategoriesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		category, err := categories.FetchCategory(id)
		if err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusNotFound, "category not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, categoryResponse(category))
	}
}

func handleCreateCategory(categories store.CategoriesStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}

		category, err := categories.CreateCategory(req.Title)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Added(username, "category", category.ID, category.Title))

		respondWithJSON(w, http.StatusCreated, categoryResponse(category))
	}
}

func handleUpdateCategory(categories store.CategoriesStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		var req CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}

		category, err := categories.UpdateCategory(id, req.Title)
		if err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusNotFound, "category not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Changed(username, "category", category.ID, category.Title))

		respondWithJSON(w, http.StatusOK, categoryResponse(category))
	}
}

func handleDeleteCategory(categories store.CategoriesStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		// Fetch first so the log entry can carry the title
		category, err := categories.FetchCategory(id)
		if err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusNotFound, "category not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if err := categories.DeleteCategory(id); err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusNotFound, "category not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Deleted(username, "category", category.ID, category.Title))

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListComponents(components store.ComponentsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := components.ListComponents()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]ComponentResponse, 0, len(list))
		for i := range list {
			out = append(out, componentResponse(&list[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetComponent(components store.ComponentsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		component, err := components.FetchComponent(id)
		if err != nil {
			if errors.Is(err, store.ErrComponentNotFound) {
				respondWithError(w, http.StatusNotFound, "component not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondWithJSON(w, http.StatusOK, componentResponse(component))
	}
}

func handleCreateComponent(components store.ComponentsStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComponentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}
		if req.CategoryID == 0 {
			respondWithError(w, http.StatusBadRequest, "category_id is required")
			return
		}

		component, err := components.CreateComponent(req.Title, req.Description, req.CategoryID)
		if err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusBadRequest, "category does not exist")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Added(username, "component", component.ID, component.Title))

		respondWithJSON(w, http.StatusCreated, componentResponse(component))
	}
}

func handleUpdateComponent(components store.ComponentsStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		var req ComponentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}
		if req.CategoryID == 0 {
			respondWithError(w, http.StatusBadRequest, "category_id is required")
			return
		}

		component, err := components.UpdateComponent(id, req.Title, req.Description, req.CategoryID)
		if err != nil {
			if errors.Is(err, store.ErrComponentNotFound) {
				respondWithError(w, http.StatusNotFound, "component not found")
				return
			}
			if errors.Is(err, store.ErrCategoryNotFound) {
				respondWithError(w, http.StatusBadRequest, "category does not exist")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Changed(username, "component", component.ID, component.Title))

		respondWithJSON(w, http.StatusOK, componentResponse(component))
	}
}

func handleDeleteComponent(components store.ComponentsStore, recorder *actionlog.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		component, err := components.FetchComponent(id)
		if err != nil {
			if errors.Is(err, store.ErrComponentNotFound) {
				respondWithError(w, http.StatusNotFound, "component not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if err := components.DeleteComponent(id); err != nil {
			if errors.Is(err, store.ErrComponentNotFound) {
				respondWithError(w, http.StatusNotFound, "component not found")
				return
			}
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		username, _ := middleware.Username(r.Context())
		recorder.Record(actionlog.Deleted(username, "component", component.ID, component.Title))

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleActionLog(entries store.ActionLogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		list, err := entries.RecentEntries(limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]LogEntryResponse, 0, len(list))
		for _, entry := range list {
			out = append(out, LogEntryResponse{
				ID:         entry.ID,
				ActionTime: entry.ActionTime,
				Username:   entry.Username,
				ObjectType: entry.ObjectType,
				ObjectID:   entry.ObjectID,
				ObjectRepr: entry.ObjectRepr,
				ActionFlag: entry.ActionFlag,
				Message:    entry.Message,
			})
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

// pathID extracts the {id} route variable; the route pattern guarantees digits
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

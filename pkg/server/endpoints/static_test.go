package endpoints

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileServing(t *testing.T) {
	t.Run("serves static files when enabled", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "site.css", "body { margin: 0; }")

		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		s.Config.StaticRoot = dir
		s.ServeStatic = true
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/static/site.css", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "body { margin: 0; }", w.Body.String())
	})

	t.Run("does not serve static files when disabled", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "site.css", "body { margin: 0; }")

		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		s.Config.StaticRoot = dir
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/static/site.css", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("serves media files when enabled", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "upload.txt", "uploaded content")

		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		s.Config.MediaRoot = dir
		s.ServeMedia = true
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/media/upload.txt", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "uploaded content", w.Body.String())
	})

	t.Run("does not serve media files when disabled", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "upload.txt", "uploaded content")

		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		s.Config.MediaRoot = dir
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/media/upload.txt", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 404 for a missing static file", func(t *testing.T) {
		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		s.Config.StaticRoot = t.TempDir()
		s.ServeStatic = true
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/static/missing.css", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("favicon returns 404", func(t *testing.T) {
		s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
		RegisterFileServing(s)

		req := httptest.NewRequest("GET", "/favicon.ico", nil)
		w := httptest.NewRecorder()
		s.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

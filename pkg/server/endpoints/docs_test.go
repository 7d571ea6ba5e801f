package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocsEndpoint(t *testing.T) {
	s := newTestServer(t, false, NewMockCategoriesStore(), NewMockComponentsStore(), NewMockActionLogStore())
	RegisterDocsEndpoints(s)

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	// The embedded guide markdown must come through rendered, not raw
	assert.Contains(t, w.Body.String(), "<h1")
	assert.Contains(t, w.Body.String(), "Catalog operator guide")
	assert.NotContains(t, w.Body.String(), "# Catalog operator guide")
}

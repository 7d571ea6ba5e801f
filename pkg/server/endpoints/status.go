package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"

	"catalogd/pkg/config"
	"catalogd/pkg/server"
)

// RegisterStatusEndpoints registers the status page
func RegisterStatusEndpoints(s *server.Server) {
	// GET / - Status page (no auth required)
	s.Router.HandleFunc("/", handleStatus(s.Config)).Methods("GET")
}

func handleStatus(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := cfg.VersionDisplay
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>Catalog Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p>Your catalog server is running!</p>

      <dl>
        <dt>Version:</dt>
        <dd>` + version + `</dd>
        <dt>Endpoints:</dt>
        <dd>
          <ul>
            <li><a href="/graphql">/graphql</a> &mdash; GraphQL API (GraphiQL in debug mode)</li>
            <li><a href="/docs">/docs</a> &mdash; operator guide</li>
            <li>/admin &mdash; admin API (token required)</li>
          </ul>
        </dd>
        <dt>Probes:</dt>
        <dd>/alive, /ready and /startup are served on the probe port.</dd>
      </dl>
    </main>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

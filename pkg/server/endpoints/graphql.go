package endpoints

import (
	"encoding/json"
	"io"
	"net/http"

	"catalogd/pkg/graphql"
	"catalogd/pkg/server"
)

// graphqlRequest is the standard GraphQL-over-HTTP request body
type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// RegisterGraphQLEndpoints registers the GraphQL query endpoint and, in debug
// mode, the GraphiQL IDE page.
func RegisterGraphQLEndpoints(s *server.Server) {
	s.Router.HandleFunc("/graphql", handleGraphQL(s.Schema)).Methods("POST")

	if s.Config.Debug {
		s.Router.HandleFunc("/graphql", handleGraphiQL()).Methods("GET")
	}
}

func handleGraphQL(schema *graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		var req graphqlRequest
		if err := json.Unmarshal(body, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}
		if req.Query == "" {
			respondWithError(w, http.StatusBadRequest, "query is required")
			return
		}

		result := schema.Execute(req.Query, req.Variables, req.OperationName)

		respondWithJSON(w, http.StatusOK, result)
	}
}

// handleGraphiQL serves the GraphiQL IDE, pointed at /graphql
func handleGraphiQL() http.HandlerFunc {
	const page = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>GraphiQL</title>
    <style>html, body, #graphiql { height: 100%; margin: 0; }</style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css">
  </head>
  <body>
    <div id="graphiql">Loading GraphiQL...</div>
    <script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
    <script>
      const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
      ReactDOM.createRoot(document.getElementById('graphiql')).render(
        React.createElement(GraphiQL, { fetcher: fetcher })
      );
    </script>
  </body>
</html>
`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

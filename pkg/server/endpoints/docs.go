package endpoints

import (
	"bytes"
	"embed"
	"net/http"

	"github.com/yuin/goldmark"

	"catalogd/pkg/server"
)

//go:embed docs/GUIDE.md
var docFiles embed.FS

// RegisterDocsEndpoints serves the rendered operator guide at /docs
func RegisterDocsEndpoints(srv *server.Server) {
	srv.Router.HandleFunc("/docs", handleDocs()).Methods("GET")
}

func handleDocs() http.HandlerFunc {
	source, _ := docFiles.ReadFile("docs/GUIDE.md")

	var body bytes.Buffer
	if err := goldmark.Convert(source, &body); err != nil {
		body.Reset()
		body.WriteString("<p>guide unavailable</p>")
	}

	page := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>Catalog Guide</title>
    <style>
      body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem; font-family: sans-serif; line-height: 1.5; }
      pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
      code { background: #f4f4f4; }
    </style>
  </head>
  <body>
` + body.String() + `  </body>
</html>
`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

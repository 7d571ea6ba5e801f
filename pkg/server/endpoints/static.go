package endpoints

import (
	"net/http"

	"catalogd/pkg/server"
)

// RegisterFileServing registers the /static/ and /media/ file handlers when
// the corresponding serve flags are enabled. Roots come from the config.
func RegisterFileServing(srv *server.Server) {
	if srv.ServeStatic && srv.Config.StaticRoot != "" {
		srv.Router.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(srv.Config.StaticRoot))),
		)
	}

	if srv.ServeMedia && srv.Config.MediaRoot != "" {
		srv.Router.PathPrefix("/media/").Handler(
			http.StripPrefix("/media/", http.FileServer(http.Dir(srv.Config.MediaRoot))),
		)
	}

	srv.Router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}

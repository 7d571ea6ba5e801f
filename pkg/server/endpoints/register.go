package endpoints

import (
	"catalogd/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterGraphQLEndpoints(srv)
	RegisterAdminEndpoints(srv)
	RegisterDocsEndpoints(srv)

	// Static and media files, when enabled by serve flags
	RegisterFileServing(srv)
}

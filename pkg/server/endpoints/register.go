package endpoints

import (
	"conduit-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterArticlesEndpoints(srv)
	RegisterTagsEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)
}

package endpoints

import (
	"github.com/labelforge/labelforge/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterStatusEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterProjectsEndpoints(srv)
	RegisterLabelsEndpoints(srv)
	RegisterImagesEndpoints(srv)
	RegisterAnnotationsEndpoints(srv)
	RegisterMembershipsEndpoints(srv)
}

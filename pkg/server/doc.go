// Package server provides the HTTP server for the LabelForge API.
//
// This package implements the core HTTP server that handles all LabelForge
// REST API requests. It uses gorilla/mux for routing and provides middleware
// for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, sessionKey, blobs, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - The store interfaces backing the endpoints
//   - Blobs: Object storage for image bytes
//   - Resolver/Evaluator: The authorization core
//   - SessionAuth: Session token validation
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all LabelForge API endpoints including:
//
//   - /signup, /login - Credential handling and session tokens
//   - /projects - Project management
//   - /projects/{id}/labels - Label classes
//   - /projects/{id}/images - Image upload and metadata
//   - /images/{id}/annotations - Annotation drawing and review
//   - /projects/{id}/memberships - Membership bookkeeping
//   - /whoami - Token introspection
package server

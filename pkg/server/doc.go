// Package server provides the HTTP server for the Conduit API.
//
// This package implements the core HTTP server that handles all Conduit REST
// API requests. It uses gorilla/mux for routing and provides middleware for
// authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, host, port)
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
//   - Config: runtime configuration
//   - Stores: storage interfaces backing the endpoints
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all standard Conduit API endpoints including:
//
//   - /articles - Article listing and creation
//   - /articles/{slug} - Single article retrieval, update and deletion
//   - /tags - Tag listing
//   - /whoami - Token introspection
//   - /health - Connectivity check
package server

// Package conduit provides a Go implementation of the Conduit article
// publishing server.
//
// Conduit is a Medium-style publishing backend: registered users author
// articles, label them with tags and manage them through a REST API.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Storage interfaces and GORM implementations
//   - pkg/authz: Ownership permission checks
//   - pkg/model: Database models
//   - pkg/slugify: URL slug derivation
//   - pkg/markdown: Article body rendering
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the conduitctl CLI:
//
//	# Run database migrations
//	conduitctl db migrate
//
//	# Create a user and capture their token
//	conduitctl user create jake jake@jake.jake --password secret
//
//	# Start the server
//	conduitctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - CONDUIT_CONFIG_PATH: Directory holding conduit.yml (default: /etc/conduit/config)
//   - CONDUIT_LOG_LEVEL: Log level (debug, info, warn, error)
//   - CONDUIT_AUDIT_ENABLED: Emit RFC 5424 audit events when set to true
//   - PORT: Server port (default: 8000)
package main

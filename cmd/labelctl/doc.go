// Package main implements labelctl, the LabelForge server CLI.
//
// LabelForge is a web application for collaborative image annotation. Teams
// create projects, upload images, and draw labelled annotations over them.
// Access control is creator-based: a project and everything under it belongs
// to the principal that created it, with a narrow read override for reviewers
// and admins.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/authz: Principal resolution, ownership graph, and policy evaluation
//   - pkg/blob: S3-compatible object storage for image files
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a session signing key
//	export LABELFORGE_SESSION_KEY=$(head -c 32 /dev/urandom | base64)
//
//	# Run database migrations
//	labelctl db migrate
//
//	# Create an admin user
//	labelctl user create admin --role admin
//
//	# Start the server
//	labelctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - LABELFORGE_SESSION_KEY: Base64-encoded key for signing session tokens
//   - LABELFORGE_CONFIG_PATH: Config file directory (default: /etc/labelforge/config)
//   - LABELFORGE_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main

// Package db embeds the SQL migrations so production builds can run them
// without the source tree present. Enabled with the embed_migrations build
// tag; development builds read db/migrations from disk instead.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS

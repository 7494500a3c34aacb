// Package db embeds the SQL migrations so production builds do not need
// the migrations directory on disk. Enabled with the embed_migrations
// build tag.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

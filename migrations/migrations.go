// Package migrations embeds the SQL migrations so the sqlite store can
// create its schema on startup. Postgres deployments run cmd/migrator.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

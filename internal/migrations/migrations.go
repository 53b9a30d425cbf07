// Package migrations embeds the goose SQL migrations for the SQL key/value
// backends. Each dialect has its own directory inside FS.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Directories inside FS, one per goose dialect.
const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)

// Package migrations embeds the SQL schema migrations for each supported dialect.
package migrations

import "embed"

// FS holds the postgres/ and sqlite/ migration directories
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

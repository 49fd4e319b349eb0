// Package migrations embeds the goose SQL migrations so the server can
// ensure its schema at startup without shipping migration files alongside
// the binary.
package migrations

import "embed"

// FS holds the embedded migration files.
//
//go:embed *.sql
var FS embed.FS

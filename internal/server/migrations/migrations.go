// Package migrations embeds the goose SQL migrations that create the schema.
// They run idempotently at process start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

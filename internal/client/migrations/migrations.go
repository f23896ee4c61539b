// Package migrations embeds the client's local goose SQL migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

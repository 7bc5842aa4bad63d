// Package migrations embeds the goose migration scripts for the durable
// key-value store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

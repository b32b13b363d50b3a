// Package migrations embeds the goose SQL migrations for the local offline
// database. The goose version table is the store's schema version: opening a
// database created by an older build applies only the missing migrations,
// leaving existing tables and their data intact.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

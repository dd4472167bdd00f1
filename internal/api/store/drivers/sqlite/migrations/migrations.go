package migrations

import "embed"

// Migrations holds the embedded schema migration files.
//
//go:embed *.sql
var Migrations embed.FS

// Package db holds the SQL schema migrations applied by cmd/migration and
// by the API at startup when DB_AUTO_MIGRATE is set.
package db

import "embed"

// Migrations contains migrations/*.sql in golang-migrate file naming.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"

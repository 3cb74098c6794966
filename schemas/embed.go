// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains per-driver SQL migration files, applied in
// lexicographic filename order. Every statement is idempotent so the
// runner can re-apply the full set on startup.
//
//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var Migrations embed.FS

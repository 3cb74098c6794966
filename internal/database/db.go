// Package database provides database connection management and migrations.
package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/hmbarbier/brevetcoach/internal/config"
	"github.com/hmbarbier/brevetcoach/schemas"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Open opens a database connection using the provided config.
// The sqlite driver is the default; mysql is supported for shared deployments.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	switch cfg.Driver {
	case DriverSQLite, "":
		db, err = sqlx.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlx.Open(sqlite) > %w", err)
		}
	case DriverMySQL:
		mysqlCfg := mysql.NewConfig()
		mysqlCfg.User = cfg.Username
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mysqlCfg.DBName = cfg.Database
		mysqlCfg.ParseTime = true
		mysqlCfg.MultiStatements = true
		if cfg.TLS {
			mysqlCfg.TLSConfig = "true"
		}

		db, err = sqlx.Open("mysql", mysqlCfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("sqlx.Open(mysql) > %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

// Migrate applies the embedded migrations for the given driver in filename order.
// Statements are idempotent, so re-applying the full set is safe.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	if driver == "" {
		driver = DriverSQLite
	}

	dir := "migrations/" + driver
	entries, err := schemas.Migrations.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("schemas.Migrations.ReadDir(%s) > %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := schemas.Migrations.ReadFile(dir + "/" + name)
		if err != nil {
			return fmt.Errorf("schemas.Migrations.ReadFile(%s) > %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("db.ExecContext(migration %s) > %w", name, err)
		}
	}
	return nil
}

// resetTables lists every table in child-first order so foreign keys
// do not block deletion.
var resetTables = []string{
	"attempts",
	"study_sessions",
	"review_states",
	"exercises",
	"lessons",
	"subjects",
}

// Reset deletes all rows from every table and re-applies migrations.
func Reset(ctx context.Context, db *sqlx.DB, driver string) error {
	for _, table := range resetTables {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("db.ExecContext(delete from %s) > %w", table, err)
		}
	}
	return Migrate(ctx, db, driver)
}

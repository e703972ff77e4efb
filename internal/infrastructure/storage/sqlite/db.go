// Package sqlite provides the SQLite infrastructure: the single-file store,
// the versioned schema migrations and the repository implementations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sql.DB handle to the single database file.
type DB struct {
	*sql.DB
}

// Open opens (or creates) the database file and applies pending migrations.
// The connection limit of one matches the application's single-writer model;
// SQLite serializes writers anyway and this keeps transactions from
// self-deadlocking on a second connection.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_busy_timeout=5000&_foreign_keys=on"
	}

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{DB: sqlDB}
	if err := db.Migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}
